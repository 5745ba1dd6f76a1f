// Package valerr defines the diagnostics model shared by the expression
// front end: a categorized error carrying a source location, a snippet of
// the offending source, and an optional fix suggestion.
package valerr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Category classifies where in the pipeline a diagnostic was produced.
type Category int

const (
	// CategorySyntax covers lexer and syntax checker failures.
	CategorySyntax Category = iota
	// CategoryType covers type checker failures.
	CategoryType
	// CategoryProperty covers per-property rule failures (range, enum).
	CategoryProperty
	// CategoryDoc covers documentation index failures.
	CategoryDoc
)

// String returns the string representation of Category.
func (c Category) String() string {
	switch c {
	case CategorySyntax:
		return "syntax"
	case CategoryType:
		return "type"
	case CategoryProperty:
		return "property"
	case CategoryDoc:
		return "doc"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the category as its string name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Severity represents how serious a diagnostic is.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the string representation of Severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the severity as its string name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// SourceSpan is the coarse location attached to an expression. It is
// snapshotted once when the expression is parsed and copied verbatim into
// every diagnostic produced for that expression, so all failures within one
// expression report the same line and column.
type SourceSpan struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// ErrorContext carries the location and supporting detail for a diagnostic.
type ErrorContext struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Snippet    string `json:"snippet,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ContextFromSpan builds an ErrorContext from an expression's span and source.
func ContextFromSpan(span SourceSpan, snippet, suggestion string) ErrorContext {
	return ErrorContext{
		File:       span.File,
		Line:       span.Line,
		Column:     span.Column,
		Snippet:    snippet,
		Suggestion: suggestion,
	}
}

// ValidatorError is the single error shape produced by the lexer, the syntax
// checker, the type checker, and the property rule layer. Callers distinguish
// the producing stage by Category only.
type ValidatorError struct {
	Category Category     `json:"category"`
	Message  string       `json:"message"`
	Context  ErrorContext `json:"context"`
	Severity Severity     `json:"severity"`
}

// Error implements the error interface.
func (e *ValidatorError) Error() string {
	if e.Context.File != "" {
		return fmt.Sprintf("%s error at %s:%d:%d: %s", e.Category, e.Context.File, e.Context.Line, e.Context.Column, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Category, e.Message)
}

// New creates a ValidatorError with SeverityError.
func New(category Category, message string, context ErrorContext) *ValidatorError {
	return &ValidatorError{
		Category: category,
		Message:  message,
		Context:  context,
		Severity: SeverityError,
	}
}

// AsValidatorErrors extracts ValidatorError instances from err, including
// errors joined with errors.Join.
func AsValidatorErrors(err error) []*ValidatorError {
	if err == nil {
		return nil
	}

	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var collected []*ValidatorError
		for _, e := range joined.Unwrap() {
			collected = append(collected, AsValidatorErrors(e)...)
		}
		return collected
	}

	var single *ValidatorError
	if errors.As(err, &single) {
		return []*ValidatorError{single}
	}

	return nil
}
