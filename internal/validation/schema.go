// Package validation checks generated JSON documents against embedded JSON
// schemas.
package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
)

//go:embed report.schema.json
var reportSchema []byte

const reportSchemaURL = "report.schema.json"

var (
	reportOnce     sync.Once
	reportCompiled *jsonschema.Schema
	reportErr      error
)

// ValidationIssue is a single failed constraint.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError lists every issue found in a payload.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from err.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// ValidateReport checks an encoded statistics report against the embedded
// report schema.
func ValidateReport(payload []byte) error {
	schema, err := compiledReportSchema()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return validatePayload(schema, payload)
}

// ReportSchema returns a copy of the embedded report schema.
func ReportSchema() []byte {
	return append([]byte(nil), reportSchema...)
}

func compiledReportSchema() (*jsonschema.Schema, error) {
	reportOnce.Do(func() {
		reportCompiled, reportErr = compileSchema(reportSchemaURL, reportSchema)
	})
	return reportCompiled, reportErr
}

func validatePayload(schema *jsonschema.Schema, payload []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	var document any
	if err := decoder.Decode(&document); err != nil {
		return fmt.Errorf("%w: decode payload: %v", ErrSchemaValidation, err)
	}
	if err := schema.Validate(document); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func compileSchema(url string, source []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(url, bytes.NewReader(source)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
