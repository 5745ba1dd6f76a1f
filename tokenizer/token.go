package tokenizer

import (
	"errors"
	"strconv"
)

// Sentinel errors
var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidNumber    = errors.New("invalid number format")
)

// TokenType represents the type of a token
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota
	IDENTIFIER
	NUMBER
	STRING

	// Constructed variants. The lexer never emits these; they exist for
	// callers that assemble token slices directly (the type checker handles
	// them, and docindex synthesizes method signatures through them).
	BOOLEAN
	ARRAY
	OBJECT
	METHOD_CALL
	UNARY_OP

	// Operators and punctuation
	PROPERTY_ACCESS // .
	BINARY_OP       // one or two characters from +-*/%=!<>&|
	OPENED_PARENS   // (
	CLOSED_PARENS   // )
	OPENED_BRACKET  // [
	CLOSED_BRACKET  // ]
	OPENED_BRACE    // {
	CLOSED_BRACE    // }
	COMMA           // ,
	SEMICOLON       // ;
	COLON           // :
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case IDENTIFIER:
		return "IDENTIFIER"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case BOOLEAN:
		return "BOOLEAN"
	case ARRAY:
		return "ARRAY"
	case OBJECT:
		return "OBJECT"
	case METHOD_CALL:
		return "METHOD_CALL"
	case UNARY_OP:
		return "UNARY_OP"
	case PROPERTY_ACCESS:
		return "PROPERTY_ACCESS"
	case BINARY_OP:
		return "BINARY_OP"
	case OPENED_PARENS:
		return "OPENED_PARENS"
	case CLOSED_PARENS:
		return "CLOSED_PARENS"
	case OPENED_BRACKET:
		return "OPENED_BRACKET"
	case CLOSED_BRACKET:
		return "CLOSED_BRACKET"
	case OPENED_BRACE:
		return "OPENED_BRACE"
	case CLOSED_BRACE:
		return "CLOSED_BRACE"
	case COMMA:
		return "COMMA"
	case SEMICOLON:
		return "SEMICOLON"
	case COLON:
		return "COLON"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a token. Value holds the literal text: the identifier
// name, the operator characters, or the string contents without quotes.
// Num is only meaningful for NUMBER tokens, Bool for BOOLEAN, Elems for
// ARRAY and METHOD_CALL, and Props for OBJECT.
type Token struct {
	Type     TokenType
	Value    string
	Num      float64
	Bool     bool
	Elems    []Token
	Props    map[string]Token
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return t.Type.String() + ": " + strconv.FormatFloat(t.Num, 'g', -1, 64)
	case BOOLEAN:
		return t.Type.String() + ": " + strconv.FormatBool(t.Bool)
	default:
		return t.Type.String() + ": " + t.Value
	}
}

// Is reports whether the token has the given type.
func (t Token) Is(tokenType TokenType) bool {
	return t.Type == tokenType
}
