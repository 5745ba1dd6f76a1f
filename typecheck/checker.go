package typecheck

import (
	"fmt"

	"github.com/motionlint/motionlint/parser"
	"github.com/motionlint/motionlint/tokenizer"
	"github.com/motionlint/motionlint/valerr"
)

// Checker type-checks parsed expressions against an Environment. The
// environment is fixed at construction and never mutated, so a Checker may
// be shared across goroutines checking independent expressions.
type Checker struct {
	env Environment
}

// NewChecker creates a Checker over the built-in environment.
func NewChecker() *Checker {
	return &Checker{env: Builtins()}
}

// NewCheckerWithEnvironment creates a Checker over a caller-supplied
// environment.
func NewCheckerWithEnvironment(env Environment) *Checker {
	return &Checker{env: env}
}

// Check infers the type of expr or fails with a type diagnostic. A rejected
// expression is never partially annotated: the call is atomic, either a full
// Type or an error. The walk is a left fold over the token sequence with no
// operator precedence, matching syntax checker behaviour.
func (c *Checker) Check(expr *parser.Expression) (Type, error) {
	ctx := &checkContext{expr: expr}
	return c.checkTokens(expr.Tokens, ctx)
}

// checkTokens folds a token sub-range into a single type, maintaining a
// current-type accumulator that starts as the type of the first token.
func (c *Checker) checkTokens(tokens []tokenizer.Token, ctx *checkContext) (Type, error) {
	if len(tokens) == 0 {
		return Any(), nil
	}

	current, err := c.checkToken(tokens[0], ctx)
	if err != nil {
		return Type{}, err
	}

	pos := 1
	for pos < len(tokens) {
		switch tokens[pos].Type {
		case tokenizer.PROPERTY_ACCESS:
			pos++
			if pos >= len(tokens) {
				return Type{}, ctx.errorf("Expected property name after '.'")
			}
			current, err = c.checkPropertyAccess(current, tokens[pos], ctx)
			if err != nil {
				return Type{}, err
			}
			pos++
		case tokenizer.BINARY_OP:
			op := tokens[pos].Value
			pos++
			if pos >= len(tokens) {
				return Type{}, ctx.errorf("Expected expression after operator")
			}
			right, err := c.checkToken(tokens[pos], ctx)
			if err != nil {
				return Type{}, err
			}
			current, err = c.checkBinaryOp(op, current, right, ctx)
			if err != nil {
				return Type{}, err
			}
			pos++
		case tokenizer.OPENED_PARENS:
			if current.Kind != KindMethod {
				return Type{}, ctx.errorf("Cannot call non-method type")
			}
			pos++
			args, err := c.collectArguments(tokens, &pos, ctx)
			if err != nil {
				return Type{}, err
			}
			if len(args) != len(current.Params) {
				return Type{}, ctx.errorf("Expected %d arguments, found %d", len(current.Params), len(args))
			}
			for i, arg := range args {
				if !Matches(arg, current.Params[i]) {
					return Type{}, ctx.errorf("Type mismatch: expected %s, found %s", current.Params[i], arg)
				}
			}
			current = *current.Return
		default:
			return Type{}, ctx.errorf("Unexpected token")
		}
	}

	return current, nil
}

// checkToken resolves the type of a single token. The container variants
// (BOOLEAN, ARRAY, OBJECT) are handled for callers that construct token
// slices directly; the lexer never emits them.
func (c *Checker) checkToken(token tokenizer.Token, ctx *checkContext) (Type, error) {
	switch token.Type {
	case tokenizer.NUMBER:
		return Number(), nil
	case tokenizer.STRING:
		return String(), nil
	case tokenizer.BOOLEAN:
		return Boolean(), nil
	case tokenizer.IDENTIFIER:
		t, ok := c.env.Lookup(token.Value)
		if !ok {
			return Type{}, ctx.errorf("Unknown identifier: %s", token.Value)
		}
		return t, nil
	case tokenizer.ARRAY:
		if len(token.Elems) == 0 {
			return ArrayOf(Any()), nil
		}
		elemType, err := c.checkToken(token.Elems[0], ctx)
		if err != nil {
			return Type{}, err
		}
		for _, elem := range token.Elems[1:] {
			t, err := c.checkToken(elem, ctx)
			if err != nil {
				return Type{}, err
			}
			if !Matches(t, elemType) {
				return Type{}, ctx.errorf("Inconsistent array element types")
			}
		}
		return ArrayOf(elemType), nil
	case tokenizer.OBJECT:
		props := make(map[string]Type, len(token.Props))
		for name, value := range token.Props {
			t, err := c.checkToken(value, ctx)
			if err != nil {
				return Type{}, err
			}
			props[name] = t
		}
		return ObjectOf(props), nil
	default:
		return Type{}, ctx.errorf("Unexpected token")
	}
}

// checkPropertyAccess resolves objType.prop.
func (c *Checker) checkPropertyAccess(objType Type, propToken tokenizer.Token, ctx *checkContext) (Type, error) {
	if propToken.Type != tokenizer.IDENTIFIER {
		return Type{}, ctx.errorf("Expected property name")
	}

	switch objType.Kind {
	case KindObject:
		propType, ok := objType.Props[propToken.Value]
		if !ok {
			return Type{}, ctx.errorf("Unknown property: %s", propToken.Value)
		}
		return propType, nil
	case KindAny:
		return Any(), nil
	default:
		return Type{}, ctx.errorf("Cannot access properties of non-object type")
	}
}

// checkBinaryOp applies the operator compatibility rules: arithmetic needs
// numerics, same-dimension vectors, or colors; comparison needs structurally
// equal types and yields Boolean; logical operators need Boolean operands.
func (c *Checker) checkBinaryOp(op string, left, right Type, ctx *checkContext) (Type, error) {
	switch op {
	case "+", "-", "*", "/":
		switch {
		case left.IsNumeric() && right.IsNumeric():
			return Number(), nil
		case left.IsVector() && right.IsVector():
			if !VectorsCompatible(left, right) {
				return Type{}, ctx.errorf("Vector dimensions do not match")
			}
			return left, nil
		case left.IsColor() && right.IsColor():
			return Color(), nil
		default:
			return Type{}, ctx.errorf("Invalid operand types for arithmetic operator: %s and %s", left, right)
		}
	case "==", "!=", "<", ">", "<=", ">=":
		if !Matches(left, right) {
			return Type{}, ctx.errorf("Type mismatch in comparison: %s and %s", left, right)
		}
		return Boolean(), nil
	case "&&", "||":
		if left.Kind != KindBoolean || right.Kind != KindBoolean {
			return Type{}, ctx.errorf("Boolean operator requires boolean operands")
		}
		return Boolean(), nil
	default:
		return Type{}, ctx.errorf("Unknown operator: %s", op)
	}
}

// collectArguments splits a call's token range on top-level commas and
// type-checks each argument sub-expression independently. pos starts just
// after the opening parenthesis and ends just after the closing one.
func (c *Checker) collectArguments(tokens []tokenizer.Token, pos *int, ctx *checkContext) ([]Type, error) {
	var (
		args      []Type
		argTokens []tokenizer.Token
		depth     int
	)

	for *pos < len(tokens) {
		token := tokens[*pos]

		switch {
		case token.Is(tokenizer.CLOSED_PARENS) && depth == 0:
			if len(argTokens) > 0 {
				argType, err := c.checkTokens(argTokens, ctx)
				if err != nil {
					return nil, err
				}
				args = append(args, argType)
			}
			*pos++
			return args, nil
		case token.Is(tokenizer.COMMA) && depth == 0:
			if len(argTokens) > 0 {
				argType, err := c.checkTokens(argTokens, ctx)
				if err != nil {
					return nil, err
				}
				args = append(args, argType)
				argTokens = nil
			}
			*pos++
		default:
			if token.Is(tokenizer.OPENED_PARENS) {
				depth++
			} else if token.Is(tokenizer.CLOSED_PARENS) {
				depth--
			}
			argTokens = append(argTokens, token)
			*pos++
		}
	}

	return nil, ctx.errorf("Unterminated method call")
}

// checkContext carries the expression being checked so every diagnostic
// reports the expression's coarse location.
type checkContext struct {
	expr *parser.Expression
}

func (ctx *checkContext) errorf(format string, args ...any) error {
	return valerr.New(valerr.CategoryType, fmt.Sprintf(format, args...), ctx.expr.Context(""))
}
