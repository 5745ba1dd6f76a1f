package tokenizer

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTokenIterator(t *testing.T) {
	tokenizer := NewExprTokenizer("valueAtTime(time) + position")

	expectedTypes := []TokenType{
		IDENTIFIER, OPENED_PARENS, IDENTIFIER, CLOSED_PARENS, BINARY_OP, IDENTIFIER, EOF,
	}

	var actualTypes []TokenType
	for token, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		actualTypes = append(actualTypes, token.Type)

		if token.Type == EOF {
			break
		}
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestIteratorEarlyTermination(t *testing.T) {
	tokenizer := NewExprTokenizer("linear(time, 0, 1, 0, 100)")

	count := 0
	for _, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		count++

		if count >= 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}

func TestBasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "number literal",
			input: "42.5",
			expected: []Token{
				{Type: NUMBER, Value: "42.5", Num: 42.5, Position: Position{Line: 1, Column: 1, Offset: 0}},
			},
		},
		{
			name:  "double quoted string",
			input: `"hello"`,
			expected: []Token{
				{Type: STRING, Value: "hello", Position: Position{Line: 1, Column: 1, Offset: 0}},
			},
		},
		{
			name:  "single quoted string",
			input: "'world'",
			expected: []Token{
				{Type: STRING, Value: "world", Position: Position{Line: 1, Column: 1, Offset: 0}},
			},
		},
		{
			name:  "identifier",
			input: "position",
			expected: []Token{
				{Type: IDENTIFIER, Value: "position", Position: Position{Line: 1, Column: 1, Offset: 0}},
			},
		},
		{
			name:  "underscore identifier",
			input: "_offset2",
			expected: []Token{
				{Type: IDENTIFIER, Value: "_offset2", Position: Position{Line: 1, Column: 1, Offset: 0}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewExprTokenizer(tt.input).AllTokens()
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestPunctuationTokens(t *testing.T) {
	tokens, err := NewExprTokenizer("( ) [ ] { } , ; : .").AllTokens()
	assert.NoError(t, err)

	expectedTypes := []TokenType{
		OPENED_PARENS, CLOSED_PARENS, OPENED_BRACKET, CLOSED_BRACKET,
		OPENED_BRACE, CLOSED_BRACE, COMMA, SEMICOLON, COLON, PROPERTY_ACCESS,
	}

	var actualTypes []TokenType
	for _, token := range tokens {
		actualTypes = append(actualTypes, token.Type)
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestOperatorRuns(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "single plus", input: "1 + 2", expected: []string{"+"}},
		{name: "equality", input: "1 == 2", expected: []string{"=="}},
		{name: "logical and", input: "1 && 2", expected: []string{"&&"}},
		{name: "less or equal", input: "1 <= 2", expected: []string{"<="}},
		{name: "greedy run", input: "1 +- 2", expected: []string{"+-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewExprTokenizer(tt.input).AllTokens()
			assert.NoError(t, err)

			var operators []string
			for _, token := range tokens {
				if token.Type == BINARY_OP {
					operators = append(operators, token.Value)
				}
			}

			assert.Equal(t, tt.expected, operators)
		})
	}
}

func TestPropertyChainTokens(t *testing.T) {
	tokens, err := NewExprTokenizer("layer.position").AllTokens()
	assert.NoError(t, err)

	expected := []Token{
		{Type: IDENTIFIER, Value: "layer", Position: Position{Line: 1, Column: 1, Offset: 0}},
		{Type: PROPERTY_ACCESS, Value: ".", Position: Position{Line: 1, Column: 6, Offset: 5}},
		{Type: IDENTIFIER, Value: "position", Position: Position{Line: 1, Column: 7, Offset: 6}},
	}

	assert.Equal(t, expected, tokens)
}

func TestUnterminatedStringTruncates(t *testing.T) {
	// No escape handling and no error for a missing closing quote: the
	// literal silently stops at end of input.
	tokens, err := NewExprTokenizer(`"abc`).AllTokens()
	assert.NoError(t, err)
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "abc", tokens[0].Value)
}

func TestWhitespaceSkipped(t *testing.T) {
	tokens, err := NewExprTokenizer("  1 \t+\n 2  ").AllTokens()
	assert.NoError(t, err)
	assert.Equal(t, 3, len(tokens))
}

func TestInvalidNumber(t *testing.T) {
	_, err := NewExprTokenizer("1.2.3").AllTokens()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidNumber))
}

func TestInvalidCharacter(t *testing.T) {
	_, err := NewExprTokenizer("1 @ 2").AllTokens()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCharacter))
}

func TestLeadingDotIsPropertyAccess(t *testing.T) {
	tokens, err := NewExprTokenizer(".5").AllTokens()
	assert.NoError(t, err)
	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, PROPERTY_ACCESS, tokens[0].Type)
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, 5.0, tokens[1].Num)
}
