// Package parser validates the structure of motion expressions. It walks the
// flat token sequence produced by the tokenizer with a single forward-only
// cursor, matching delimiters and argument lists without building an AST.
package parser

import (
	"errors"
	"fmt"

	"github.com/motionlint/motionlint/tokenizer"
	"github.com/motionlint/motionlint/valerr"
)

// ExpressionFile is the file name reported in expression diagnostics.
const ExpressionFile = "expression"

// Parse lexes and syntax-checks source, returning an Expression ready for
// type checking. The first error aborts the whole parse; there is no
// recovery or partial result.
func Parse(source string) (*Expression, error) {
	tokens, err := tokenizer.NewExprTokenizer(source).AllTokens()
	if err != nil {
		return nil, lexError(source, err)
	}

	checker := &syntaxChecker{
		expr: &Expression{
			Tokens: tokens,
			Source: source,
			Span:   valerr.SourceSpan{File: ExpressionFile, Line: 1, Column: 1},
		},
	}

	if err := checker.run(); err != nil {
		return nil, err
	}

	return checker.expr, nil
}

// lexError converts a tokenizer sentinel error into a syntax diagnostic with
// the matching suggestion text.
func lexError(source string, err error) error {
	suggestion := "Check expression syntax"

	switch {
	case errors.Is(err, tokenizer.ErrInvalidNumber):
		suggestion = "Check number format"
	case errors.Is(err, tokenizer.ErrInvalidCharacter):
		suggestion = "Remove invalid character"
	}

	context := valerr.ErrorContext{
		File:       ExpressionFile,
		Line:       1,
		Column:     1,
		Snippet:    source,
		Suggestion: suggestion,
	}

	return valerr.New(valerr.CategorySyntax, err.Error(), context)
}

// syntaxChecker walks the token sequence with a forward-only cursor. It
// never revisits earlier tokens except by recursive descent into a fresh
// sub-range.
type syntaxChecker struct {
	expr    *Expression
	current int
}

func (c *syntaxChecker) run() error {
	for c.current < len(c.expr.Tokens) {
		if err := c.parseExpression(); err != nil {
			return err
		}
	}
	return nil
}

// parseExpression dispatches on the current token. Identifiers may be
// followed by any run of calls and property accesses; literals stand alone;
// a leading operator consumes one more expression, which permits unary-style
// usage without validating it semantically.
func (c *syntaxChecker) parseExpression() error {
	token := c.expr.Tokens[c.current]

	switch token.Type {
	case tokenizer.IDENTIFIER:
		c.current++
		return c.parseSuffixes()
	case tokenizer.NUMBER, tokenizer.STRING:
		c.current++
		return nil
	case tokenizer.BINARY_OP:
		c.current++
		if c.current >= len(c.expr.Tokens) {
			return c.errorf("Check expression syntax", "Unexpected end of expression after operator %q", token.Value)
		}
		return c.parseExpression()
	case tokenizer.OPENED_PARENS:
		c.current++
		if err := c.parseExpression(); err != nil {
			return err
		}
		return c.expectToken(tokenizer.CLOSED_PARENS)
	case tokenizer.OPENED_BRACKET:
		c.current++
		return c.parseArray()
	case tokenizer.OPENED_BRACE:
		c.current++
		return c.parseObject()
	default:
		return c.errorf("Check expression syntax", "Unexpected token: %s", token)
	}
}

// parseSuffixes consumes the call and property-access chain following an
// identifier, e.g. transform.position.valueAtTime(time).
func (c *syntaxChecker) parseSuffixes() error {
	for c.current < len(c.expr.Tokens) {
		switch c.expr.Tokens[c.current].Type {
		case tokenizer.OPENED_PARENS:
			if err := c.parseFunctionCall(); err != nil {
				return err
			}
		case tokenizer.PROPERTY_ACCESS:
			if err := c.parsePropertyAccess(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// parseFunctionCall validates "(" expr ("," expr)* ")".
func (c *syntaxChecker) parseFunctionCall() error {
	if err := c.expectToken(tokenizer.OPENED_PARENS); err != nil {
		return err
	}

	for c.current < len(c.expr.Tokens) && !c.expr.Tokens[c.current].Is(tokenizer.CLOSED_PARENS) {
		if err := c.parseExpression(); err != nil {
			return err
		}
		if c.current < len(c.expr.Tokens) && c.expr.Tokens[c.current].Is(tokenizer.COMMA) {
			c.current++
		}
	}

	return c.expectToken(tokenizer.CLOSED_PARENS)
}

// parsePropertyAccess validates "." identifier. Whether the accessed name
// exists is the type checker's job, not checked here.
func (c *syntaxChecker) parsePropertyAccess() error {
	if err := c.expectToken(tokenizer.PROPERTY_ACCESS); err != nil {
		return err
	}
	return c.expectTokenType(tokenizer.IDENTIFIER)
}

// parseArray validates the items of "[" expr ("," expr)* "]" with the
// opening bracket already consumed.
func (c *syntaxChecker) parseArray() error {
	for c.current < len(c.expr.Tokens) && !c.expr.Tokens[c.current].Is(tokenizer.CLOSED_BRACKET) {
		if err := c.parseExpression(); err != nil {
			return err
		}
		if c.current < len(c.expr.Tokens) && c.expr.Tokens[c.current].Is(tokenizer.COMMA) {
			c.current++
		}
	}

	return c.expectToken(tokenizer.CLOSED_BRACKET)
}

// parseObject validates the items of "{" ident ":" expr ("," ...) "}" with
// the opening brace already consumed.
func (c *syntaxChecker) parseObject() error {
	for c.current < len(c.expr.Tokens) && !c.expr.Tokens[c.current].Is(tokenizer.CLOSED_BRACE) {
		if err := c.expectTokenType(tokenizer.IDENTIFIER); err != nil {
			return err
		}
		if err := c.expectToken(tokenizer.COLON); err != nil {
			return err
		}
		if err := c.parseExpression(); err != nil {
			return err
		}
		if c.current < len(c.expr.Tokens) && c.expr.Tokens[c.current].Is(tokenizer.COMMA) {
			c.current++
		}
	}

	return c.expectToken(tokenizer.CLOSED_BRACE)
}

// expectToken is the single point of delimiter matching. On failure it
// reports the expected and actual token using the expression's recorded
// location.
func (c *syntaxChecker) expectToken(expected tokenizer.TokenType) error {
	if c.current >= len(c.expr.Tokens) {
		return c.errorf(fmt.Sprintf("Expected %s", expected), "Unexpected end of expression, expected %s", expected)
	}

	if !c.expr.Tokens[c.current].Is(expected) {
		return c.errorf(fmt.Sprintf("Expected %s", expected), "Expected %s, found %s", expected, c.expr.Tokens[c.current])
	}

	c.current++
	return nil
}

// expectTokenType matches a token by kind where the value is irrelevant.
func (c *syntaxChecker) expectTokenType(expected tokenizer.TokenType) error {
	return c.expectToken(expected)
}

func (c *syntaxChecker) errorf(suggestion, format string, args ...any) error {
	return valerr.New(valerr.CategorySyntax, fmt.Sprintf(format, args...), c.expr.Context(suggestion))
}
