// Command article-index writes a Markdown table of every article in a
// directory, newest first.
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

// CLI defines the command line of article-index.
type CLI struct {
	Dir    string `name:"dir" short:"d" help:"Directory holding the articles (default: articles)."`
	Output string `name:"output" short:"o" help:"Index file to write (default: .agents/docs/article_index.md)."`
	Locale string `name:"locale" help:"Index header language (en or ja)."`
	HTML   bool   `name:"html" help:"Also write an HTML preview next to the index."`
	Config string `name:"config" short:"c" help:"YAML configuration file."`

	bootstrap.LogFlags `embed:""`
}

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "article-index: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("article-index"),
		kong.Description("Generate a Markdown index of the articles directory."),
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

// Run executes the index job. A missing article directory is reported on
// stderr, nothing is written and it is not an error.
func (c *CLI) Run(ctx context.Context, stdout, stderr io.Writer) error {
	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath: c.Config,
		Dir:        c.Dir,
		Output:     c.Output,
		Locale:     c.Locale,
		HTML:       c.HTML,
		Log:        c.LogFlags,
		Stdout:     stdout,
		Stderr:     stderr,
	})
	if err != nil {
		return err
	}

	cfg := module.Config()
	err = module.IndexHandler().Execute(ctx, articles.GenerateIndexCommand{
		Directory: cfg.Articles.Dir,
		Output:    cfg.Index.Output,
	})
	if errors.Is(err, articles.ErrDirectoryNotFound) {
		fmt.Fprintf(stderr, "Directory not found: %s\n", cfg.Articles.Dir)
		return nil
	}
	return err
}
