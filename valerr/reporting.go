package valerr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutputFormat selects how a diagnostic list is rendered.
type OutputFormat int

const (
	// FormatText renders human-readable multi-line text.
	FormatText OutputFormat = iota
	// FormatJSON renders a machine-readable JSON document.
	FormatJSON
)

// ReportConfig controls rendering behaviour.
type ReportConfig struct {
	Format      OutputFormat
	ShowSnippet bool
}

// Reporter renders diagnostic lists for CLI and report consumers.
type Reporter struct {
	config ReportConfig
}

// NewReporter creates a Reporter with the given configuration.
func NewReporter(config ReportConfig) *Reporter {
	return &Reporter{config: config}
}

// Render formats the given diagnostics according to the reporter config.
func (r *Reporter) Render(errs []*ValidatorError) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderJSON(errs)
	default:
		return r.renderText(errs), nil
	}
}

func (r *Reporter) renderText(errs []*ValidatorError) string {
	var builder strings.Builder

	for _, e := range errs {
		fmt.Fprintf(&builder, "%s [%s] %s:%d:%d: %s\n",
			e.Severity, e.Category, e.Context.File, e.Context.Line, e.Context.Column, e.Message)

		if r.config.ShowSnippet && e.Context.Snippet != "" {
			fmt.Fprintf(&builder, "    | %s\n", e.Context.Snippet)
		}

		if e.Context.Suggestion != "" {
			fmt.Fprintf(&builder, "    = suggestion: %s\n", e.Context.Suggestion)
		}
	}

	return builder.String()
}

func (r *Reporter) renderJSON(errs []*ValidatorError) (string, error) {
	type document struct {
		Count  int               `json:"count"`
		Errors []*ValidatorError `json:"errors"`
	}

	data, err := json.MarshalIndent(document{Count: len(errs), Errors: errs}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render diagnostics: %w", err)
	}

	return string(data), nil
}
