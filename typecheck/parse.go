package typecheck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownTypeName is returned when a type name cannot be parsed.
var ErrUnknownTypeName = errors.New("unknown type name")

// ParseName parses the display form of a type, the same form Type.String
// produces for scalar and parameterized types: "Number", "Vector(2)",
// "Array(Color)", "Temporal(Any)". Documentation files and rule sets name
// types in this form.
func ParseName(name string) (Type, error) {
	trimmed := strings.TrimSpace(name)

	switch trimmed {
	case "Number":
		return Number(), nil
	case "String":
		return String(), nil
	case "Boolean":
		return Boolean(), nil
	case "Color":
		return Color(), nil
	case "Any":
		return Any(), nil
	}

	base, arg, ok := splitParameterized(trimmed)
	if !ok {
		return Type{}, fmt.Errorf("%w: %q", ErrUnknownTypeName, name)
	}

	switch base {
	case "Vector":
		dim, err := strconv.Atoi(arg)
		if err != nil || dim <= 0 {
			return Type{}, fmt.Errorf("%w: invalid vector dimension in %q", ErrUnknownTypeName, name)
		}
		return Vector(dim), nil
	case "Array":
		elem, err := ParseName(arg)
		if err != nil {
			return Type{}, err
		}
		return ArrayOf(elem), nil
	case "Temporal":
		elem, err := ParseName(arg)
		if err != nil {
			return Type{}, err
		}
		return Temporal(elem), nil
	default:
		return Type{}, fmt.Errorf("%w: %q", ErrUnknownTypeName, name)
	}
}

// splitParameterized splits "Base(arg)" into its base name and argument.
func splitParameterized(name string) (base, arg string, ok bool) {
	open := strings.IndexByte(name, '(')
	if open < 0 || !strings.HasSuffix(name, ")") {
		return "", "", false
	}
	return name[:open], name[open+1 : len(name)-1], true
}
