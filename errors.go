// Package motionlint validates motion-graphics animation expressions before
// the host evaluates them: lexing, syntax checking, type checking, and
// per-property rule validation with location-annotated diagnostics.
package motionlint

import "errors"

// Common errors used throughout the motionlint package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrNoExpressions indicates a validation run was started with nothing to check.
	ErrNoExpressions = errors.New("no expressions to validate")
	// ErrUnknownOutputFormat indicates an unsupported output format name.
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
