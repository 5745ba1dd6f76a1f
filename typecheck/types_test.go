package typecheck

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestStructuralEquality(t *testing.T) {
	tests := []struct {
		name  string
		a     Type
		b     Type
		equal bool
	}{
		{name: "same scalar", a: Number(), b: Number(), equal: true},
		{name: "different scalar", a: Number(), b: String(), equal: false},
		{name: "same dimension vectors", a: Vector(2), b: Vector(2), equal: true},
		{name: "different dimension vectors", a: Vector(2), b: Vector(3), equal: false},
		{name: "same array", a: ArrayOf(Number()), b: ArrayOf(Number()), equal: true},
		{name: "different array element", a: ArrayOf(Number()), b: ArrayOf(String()), equal: false},
		{name: "same temporal", a: Temporal(Any()), b: Temporal(Any()), equal: true},
		{name: "property names differ", a: Property("position"), b: Property("scale"), equal: false},
		{
			name:  "same object",
			a:     ObjectOf(map[string]Type{"x": Number()}),
			b:     ObjectOf(map[string]Type{"x": Number()}),
			equal: true,
		},
		{
			name:  "object property sets differ",
			a:     ObjectOf(map[string]Type{"x": Number()}),
			b:     ObjectOf(map[string]Type{"x": Number(), "y": Number()}),
			equal: false,
		},
		{
			name:  "same method",
			a:     Method([]Type{Number()}, Color()),
			b:     Method([]Type{Number()}, Color()),
			equal: true,
		},
		{
			name:  "method arity differs",
			a:     Method([]Type{Number()}, Color()),
			b:     Method([]Type{Number(), Number()}, Color()),
			equal: false,
		},
		{
			name:  "controller names differ",
			a:     Controller("slider", Number()),
			b:     Controller("angle", Number()),
			equal: false,
		},
		{name: "any does not equal number structurally", a: Any(), b: Number(), equal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestMatchesTreatsAnyAsWildcard(t *testing.T) {
	assert.True(t, Matches(Any(), Number()))
	assert.True(t, Matches(Vector(3), Any()))
	assert.True(t, Matches(Any(), Any()))
	assert.False(t, Matches(Number(), String()))
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		name     string
		input    Type
		expected string
	}{
		{name: "number", input: Number(), expected: "Number"},
		{name: "vector", input: Vector(2), expected: "Vector(2)"},
		{name: "temporal any", input: Temporal(Any()), expected: "Temporal(Any)"},
		{name: "array", input: ArrayOf(Color()), expected: "Array(Color)"},
		{name: "property", input: Property("position"), expected: "Property(position)"},
		{name: "controller", input: Controller("slider", Number()), expected: "Controller(slider, Number)"},
		{
			name:     "object sorts properties",
			input:    ObjectOf(map[string]Type{"y": Number(), "x": Number()}),
			expected: "Object{x: Number, y: Number}",
		},
		{
			name:     "method",
			input:    Method([]Type{Number(), Number()}, Boolean()),
			expected: "Method(Number, Number) -> Boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.String())
		})
	}
}

func TestVectorsCompatible(t *testing.T) {
	assert.True(t, VectorsCompatible(Vector(2), Vector(2)))
	assert.False(t, VectorsCompatible(Vector(2), Vector(3)))
	assert.False(t, VectorsCompatible(Vector(2), Number()))
}

func TestBuiltinsVocabulary(t *testing.T) {
	env := Builtins()

	tests := []struct {
		name     string
		expected Type
	}{
		{name: "time", expected: Number()},
		{name: "index", expected: Number()},
		{name: "name", expected: String()},
		{name: "value", expected: Any()},
		{name: "position", expected: Vector(2)},
		{name: "scale", expected: Vector(2)},
		{name: "rotation", expected: Number()},
		{name: "opacity", expected: Number()},
		{name: "color", expected: Color()},
		{name: "fill", expected: Color()},
		{name: "stroke", expected: Color()},
		{name: "valueAtTime", expected: Method([]Type{Number()}, Temporal(Any()))},
		{name: "velocityAtTime", expected: Method([]Type{Number()}, Temporal(Vector(2)))},
		{name: "rgbToHsl", expected: Method([]Type{Color()}, Color())},
		{name: "hslToRgb", expected: Method([]Type{Color()}, Color())},
		{name: "linear", expected: Method([]Type{Number(), Number(), Number(), Number()}, Number())},
		{name: "ease", expected: Method([]Type{Number(), Number(), Number(), Number()}, Number())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, ok := env.Lookup(tt.name)
			assert.True(t, ok)
			assert.True(t, actual.Equal(tt.expected))
		})
	}

	_, ok := env.Lookup("layer")
	assert.False(t, ok)
}

func TestChainEnvironment(t *testing.T) {
	extra := MapEnvironment{"slider": Controller("slider", Number())}
	env := ChainEnvironment{extra, Builtins()}

	actual, ok := env.Lookup("slider")
	assert.True(t, ok)
	assert.True(t, actual.IsController())

	actual, ok = env.Lookup("position")
	assert.True(t, ok)
	assert.True(t, actual.Equal(Vector(2)))

	_, ok = env.Lookup("missing")
	assert.False(t, ok)
}
