package analyzecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-articles/internal/analysis"
	"github.com/google/uuid"
)

const analyzeDirectoryMessageType = "articles.analysis.analyze_directory"

// AnalyzeDirectoryCommand runs the statistics job over Directory and writes
// the report in Format.
type AnalyzeDirectoryCommand struct {
	// Directory holds the article files (relative or absolute).
	Directory string `json:"directory"`
	// Format is "text" (default) or "json", matched case-insensitively.
	Format string `json:"format,omitempty"`
	// RunID tags every log entry of the run. A zero value gets a fresh id.
	RunID uuid.UUID `json:"run_id,omitempty"`
}

// Type implements command.Message.
func (AnalyzeDirectoryCommand) Type() string { return analyzeDirectoryMessageType }

// Validate ensures the directory is set and the format is known.
func (cmd AnalyzeDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("articles.analysis.directory_required", "directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.Format, validation.By(func(value any) error {
			if _, err := analysis.ParseFormat(value.(string)); err != nil {
				return validation.NewError("articles.analysis.format_unknown", "format must be text or json")
			}
			return nil
		})),
	)
}
