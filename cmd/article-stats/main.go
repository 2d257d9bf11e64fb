// Command article-stats prints statistics about a directory of Markdown
// articles, either as a short summary or as a JSON document.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	articles "github.com/goliatone/go-articles"
	"github.com/goliatone/go-articles/cmd/internal/bootstrap"
)

// CLI defines the command line of article-stats.
type CLI struct {
	JSON   bool   `name:"json" help:"Print the full statistics document as JSON."`
	Dir    string `name:"dir" short:"d" help:"Directory holding the articles (default: articles)."`
	Config string `name:"config" short:"c" help:"YAML configuration file."`

	bootstrap.LogFlags `embed:""`
}

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "article-stats: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("article-stats"),
		kong.Description("Analyze Markdown articles and report corpus statistics."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}
	return cli.Run(ctx, stdout, stderr)
}

// Run executes the statistics job. A missing article directory is reported
// on stderr and is not an error.
func (c *CLI) Run(ctx context.Context, stdout, stderr io.Writer) error {
	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath: c.Config,
		Dir:        c.Dir,
		Log:        c.LogFlags,
		Stdout:     stdout,
		Stderr:     stderr,
	})
	if err != nil {
		return err
	}

	format := "text"
	if c.JSON {
		format = "json"
	}
	dir := module.Config().Articles.Dir
	err = module.AnalyzeHandler().Execute(ctx, articles.AnalyzeDirectoryCommand{
		Directory: dir,
		Format:    format,
	})
	if errors.Is(err, articles.ErrDirectoryNotFound) {
		fmt.Fprintf(stderr, "Directory not found: %s\n", dir)
		return nil
	}
	return err
}
