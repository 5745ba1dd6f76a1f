// Package tokenizer converts motion expression source text into a flat
// token sequence. Brackets, braces and parentheses are emitted as individual
// delimiter tokens; no nesting is constructed at this stage.
package tokenizer

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// TokenIterator uses the Go iterator pattern
type TokenIterator iter.Seq2[Token, error]

// operatorChars are the characters that form binary operator runs. A run is
// consumed greedily, so "==", "&&" and "<=" come out as a single token. No
// precedence information is attached here or anywhere downstream.
const operatorChars = "+-*/%=!<>&|"

// ExprTokenizer is a tokenizer that returns an iterator
type ExprTokenizer struct {
	input string
}

// NewExprTokenizer creates a new ExprTokenizer
func NewExprTokenizer(input string) *ExprTokenizer {
	return &ExprTokenizer{input: input}
}

// Tokens returns an iterator of tokens. Whitespace is skipped with no token
// emitted. After an error is yielded the iterator stops.
func (t *ExprTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		lexer := &lexer{
			input:  t.input,
			line:   1,
			column: 1,
		}

		lexer.readChar()

		for {
			token, err := lexer.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}

			if token.Type == EOF {
				yield(token, nil)
				return
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, excluding the trailing EOF token.
func (t *ExprTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 16)

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}
		if token.Type == EOF {
			break
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Internal lexer implementation
type lexer struct {
	input    string
	position int
	line     int
	column   int
	current  rune
}

// nextToken gets the next token
func (l *lexer) nextToken() (Token, error) {
	for isWhitespace(l.current) {
		l.readChar()
	}

	switch {
	case l.current == 0:
		return l.newToken(EOF, ""), nil
	case l.current == '(':
		return l.singleChar(OPENED_PARENS), nil
	case l.current == ')':
		return l.singleChar(CLOSED_PARENS), nil
	case l.current == '[':
		return l.singleChar(OPENED_BRACKET), nil
	case l.current == ']':
		return l.singleChar(CLOSED_BRACKET), nil
	case l.current == '{':
		return l.singleChar(OPENED_BRACE), nil
	case l.current == '}':
		return l.singleChar(CLOSED_BRACE), nil
	case l.current == '.':
		return l.singleChar(PROPERTY_ACCESS), nil
	case l.current == ',':
		return l.singleChar(COMMA), nil
	case l.current == ';':
		return l.singleChar(SEMICOLON), nil
	case l.current == ':':
		return l.singleChar(COLON), nil
	case strings.ContainsRune(operatorChars, l.current):
		return l.readOperator(), nil
	case l.current == '"' || l.current == '\'':
		return l.readString(l.current), nil
	case isDigit(l.current):
		return l.readNumber()
	case isLetter(l.current):
		return l.readIdentifier(), nil
	default:
		return Token{}, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidCharacter, l.current, l.line, l.column-1)
	}
}

// readChar reads the next character
func (l *lexer) readChar() {
	if l.position >= len(l.input) {
		l.current = 0
		l.position++
		return
	}

	l.current = rune(l.input[l.position])
	l.position++

	if l.current == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peekChar looks ahead at the next character
func (l *lexer) peekChar() rune {
	if l.position >= len(l.input) {
		return 0
	}
	return rune(l.input[l.position])
}

func (l *lexer) singleChar(tokenType TokenType) Token {
	token := l.newToken(tokenType, string(l.current))
	l.readChar()
	return token
}

// readOperator reads a greedy run of operator characters as one BINARY_OP
// token holding the literal operator text.
func (l *lexer) readOperator() Token {
	var builder strings.Builder
	start := l.startPosition()

	builder.WriteRune(l.current)
	l.readChar()

	for strings.ContainsRune(operatorChars, l.current) {
		builder.WriteRune(l.current)
		l.readChar()
	}

	return Token{Type: BINARY_OP, Value: builder.String(), Position: start}
}

// readString reads a string literal delimited by the quote rune that opened
// it. There is no escape handling. An unterminated string stops silently at
// end of input and yields the characters read so far.
func (l *lexer) readString(quote rune) Token {
	var builder strings.Builder
	start := l.startPosition()

	l.readChar()

	for l.current != 0 && l.current != quote {
		builder.WriteRune(l.current)
		l.readChar()
	}

	if l.current == quote {
		l.readChar()
	}

	return Token{Type: STRING, Value: builder.String(), Position: start}
}

// readNumber accumulates a run of digits and decimal points, then parses it
// as a 64-bit float.
func (l *lexer) readNumber() (Token, error) {
	var builder strings.Builder
	start := l.startPosition()

	for isDigit(l.current) || l.current == '.' {
		builder.WriteRune(l.current)
		l.readChar()
	}

	text := builder.String()

	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidNumber, text, start.Line, start.Column)
	}

	return Token{Type: NUMBER, Value: text, Num: num, Position: start}, nil
}

// readIdentifier reads an identifier starting with an ASCII letter or '_'
// and continuing with alphanumerics or '_'.
func (l *lexer) readIdentifier() Token {
	var builder strings.Builder
	start := l.startPosition()

	for isLetter(l.current) || isDigit(l.current) {
		builder.WriteRune(l.current)
		l.readChar()
	}

	return Token{Type: IDENTIFIER, Value: builder.String(), Position: start}
}

// newToken creates a new token at the current position
func (l *lexer) newToken(tokenType TokenType, value string) Token {
	return Token{
		Type:  tokenType,
		Value: value,
		Position: Position{
			Line:   l.line,
			Column: l.column - len([]rune(value)),
			Offset: l.position - len(value),
		},
	}
}

func (l *lexer) startPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column - 1,
		Offset: l.position - 1,
	}
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
