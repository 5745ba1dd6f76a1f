package parser

import (
	"github.com/motionlint/motionlint/tokenizer"
	"github.com/motionlint/motionlint/valerr"
)

// Expression is a syntax-validated expression: the flat token sequence, the
// original source text, and a coarse source location. It is created once per
// validated string and never mutated afterwards; the type checker consumes
// it read-only.
type Expression struct {
	Tokens []tokenizer.Token
	Source string
	Span   valerr.SourceSpan
}

// Context builds an ErrorContext for a diagnostic about this expression.
// Every diagnostic for one expression reports the same span; positions are
// expression-coarse, not token-precise.
func (e *Expression) Context(suggestion string) valerr.ErrorContext {
	return valerr.ContextFromSpan(e.Span, e.Source, suggestion)
}
