// Package typecheck infers and checks the semantic types of parsed motion
// expressions against a small built-in environment of animatable property
// and method names.
package typecheck

import (
	"fmt"
	"sort"
	"strings"
)

// Kind discriminates the closed set of semantic types.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBoolean
	KindArray
	KindObject
	KindProperty
	KindMethod
	KindColor
	KindVector
	KindTemporal
	KindController
	KindAny
)

// Type is a semantic type value. Types are values, not identities: equality
// is structural, and Any is wildcard-compatible with everything.
//
// Which fields are meaningful depends on Kind: Elem for Array, Temporal and
// Controller; Props for Object; Name for Property and Controller; Params and
// Return for Method; Dim for Vector.
type Type struct {
	Kind   Kind
	Elem   *Type
	Props  map[string]Type
	Name   string
	Params []Type
	Return *Type
	Dim    int
}

// Number returns the Number type.
func Number() Type { return Type{Kind: KindNumber} }

// String returns the String type.
func String() Type { return Type{Kind: KindString} }

// Boolean returns the Boolean type.
func Boolean() Type { return Type{Kind: KindBoolean} }

// Color returns the 4-channel Color type.
func Color() Type { return Type{Kind: KindColor} }

// Any returns the Any escape-hatch type.
func Any() Type { return Type{Kind: KindAny} }

// Vector returns a Vector type with the given dimension.
func Vector(dim int) Type { return Type{Kind: KindVector, Dim: dim} }

// ArrayOf returns an Array type with the given element type.
func ArrayOf(elem Type) Type { return Type{Kind: KindArray, Elem: &elem} }

// ObjectOf returns an Object type with the given property types.
func ObjectOf(props map[string]Type) Type { return Type{Kind: KindObject, Props: props} }

// Property returns a named Property type.
func Property(name string) Type { return Type{Kind: KindProperty, Name: name} }

// Temporal returns a Temporal type wrapping the result of a time-sampling
// call.
func Temporal(elem Type) Type { return Type{Kind: KindTemporal, Elem: &elem} }

// Controller returns a named expression-control input wrapping a value type.
func Controller(name string, value Type) Type {
	return Type{Kind: KindController, Name: name, Elem: &value}
}

// Method returns a Method type with the given parameter and return types.
func Method(params []Type, ret Type) Type {
	return Type{Kind: KindMethod, Params: params, Return: &ret}
}

// Equal reports structural equality. Any is NOT treated as a wildcard here;
// use Matches for wildcard-aware comparison.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}

	switch t.Kind {
	case KindVector:
		return t.Dim == other.Dim
	case KindProperty:
		return t.Name == other.Name
	case KindArray, KindTemporal:
		return elemEqual(t.Elem, other.Elem)
	case KindController:
		return t.Name == other.Name && elemEqual(t.Elem, other.Elem)
	case KindObject:
		if len(t.Props) != len(other.Props) {
			return false
		}
		for name, propType := range t.Props {
			otherProp, ok := other.Props[name]
			if !ok || !propType.Equal(otherProp) {
				return false
			}
		}
		return true
	case KindMethod:
		if len(t.Params) != len(other.Params) {
			return false
		}
		for i, param := range t.Params {
			if !param.Equal(other.Params[i]) {
				return false
			}
		}
		return elemEqual(t.Return, other.Return)
	default:
		return true
	}
}

func elemEqual(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Matches reports whether two types are compatible, treating Any as a
// wildcard on either side.
func Matches(a, b Type) bool {
	if a.Kind == KindAny || b.Kind == KindAny {
		return true
	}
	return a.Equal(b)
}

// String returns the display form used in diagnostics, e.g. "Vector(2)",
// "Temporal(Any)", "Method(Number) -> Color".
func (t Type) String() string {
	switch t.Kind {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindColor:
		return "Color"
	case KindAny:
		return "Any"
	case KindVector:
		return fmt.Sprintf("Vector(%d)", t.Dim)
	case KindArray:
		return fmt.Sprintf("Array(%s)", t.Elem)
	case KindTemporal:
		return fmt.Sprintf("Temporal(%s)", t.Elem)
	case KindProperty:
		return fmt.Sprintf("Property(%s)", t.Name)
	case KindController:
		return fmt.Sprintf("Controller(%s, %s)", t.Name, t.Elem)
	case KindObject:
		names := make([]string, 0, len(t.Props))
		for name := range t.Props {
			names = append(names, name)
		}
		sort.Strings(names)

		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, name+": "+t.Props[name].String())
		}
		return "Object{" + strings.Join(parts, ", ") + "}"
	case KindMethod:
		params := make([]string, 0, len(t.Params))
		for _, param := range t.Params {
			params = append(params, param.String())
		}
		return fmt.Sprintf("Method(%s) -> %s", strings.Join(params, ", "), t.Return)
	default:
		return "Unknown"
	}
}

// IsNumeric reports whether the type can take part in numeric arithmetic.
func (t Type) IsNumeric() bool {
	return t.Kind == KindNumber || t.Kind == KindAny
}

// IsVector reports whether the type is a vector of any dimension.
func (t Type) IsVector() bool {
	return t.Kind == KindVector
}

// IsColor reports whether the type is the color type.
func (t Type) IsColor() bool {
	return t.Kind == KindColor
}

// IsTemporal reports whether the type wraps a time-sampled value.
func (t Type) IsTemporal() bool {
	return t.Kind == KindTemporal
}

// IsController reports whether the type is an expression-control input.
func (t Type) IsController() bool {
	return t.Kind == KindController
}

// VectorDim returns the vector dimension, or 0 when the type is not a
// vector.
func (t Type) VectorDim() int {
	if t.Kind == KindVector {
		return t.Dim
	}
	return 0
}

// VectorsCompatible reports whether two vector types share a dimension.
// Cross-dimension arithmetic is rejected; there is no numeric-to-vector
// promotion.
func VectorsCompatible(a, b Type) bool {
	return a.Kind == KindVector && b.Kind == KindVector && a.Dim == b.Dim
}
