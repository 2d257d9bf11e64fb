package indexcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const generateIndexMessageType = "articles.index.generate"

// GenerateIndexCommand writes the article index of Directory to Output.
type GenerateIndexCommand struct {
	Directory string    `json:"directory"`
	Output    string    `json:"output"`
	RunID     uuid.UUID `json:"run_id,omitempty"`
}

// Type implements command.Message.
func (GenerateIndexCommand) Type() string { return generateIndexMessageType }

// Validate ensures both paths are present.
func (cmd GenerateIndexCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(notBlank("articles.index.directory_required", "directory is required"))),
		validation.Field(&cmd.Output, validation.Required, validation.By(notBlank("articles.index.output_required", "output is required"))),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
