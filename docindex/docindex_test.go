package docindex

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/motionlint/motionlint/parser"
	"github.com/motionlint/motionlint/typecheck"
)

const transformDoc = `# Transform

Geometric transform group of a layer.

## Properties

- position (Vector(2)) - layer position
- anchorPoint (Vector(2)) - anchor point
- opacity (Number, read-only) - opacity percent

## Methods

- valueAtTime(t: Number) -> Temporal(Any) - sample the group over time
- blend(other: Vector(2), amount: Number) -> Vector(2) - mix two positions
`

func TestParseClass(t *testing.T) {
	class, err := ParseClass([]byte(transformDoc))
	assert.NoError(t, err)

	assert.Equal(t, "Transform", class.Name)
	assert.Equal(t, "Geometric transform group of a layer.", class.Description)
	assert.Equal(t, 3, len(class.Properties))
	assert.Equal(t, 2, len(class.Methods))

	position := class.Properties["position"]
	assert.Equal(t, "Vector(2)", position.TypeName)
	assert.Equal(t, "layer position", position.Description)
	assert.False(t, position.ReadOnly)

	opacity := class.Properties["opacity"]
	assert.Equal(t, "Number", opacity.TypeName)
	assert.True(t, opacity.ReadOnly)

	blend := class.Methods["blend"]
	assert.Equal(t, []string{"other", "amount"}, blend.ParamNames)
	assert.Equal(t, []string{"Vector(2)", "Number"}, blend.ParamTypes)
	assert.Equal(t, "Vector(2)", blend.ReturnType)
	assert.Equal(t, "mix two positions", blend.Description)

	sample := class.Methods["valueAtTime"]
	assert.Equal(t, "Temporal(Any)", sample.ReturnType)
}

func TestParseClassErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "no heading",
			input:    "just some text",
			expected: ErrNoClassHeading,
		},
		{
			name:     "malformed property",
			input:    "# Layer\n\n## Properties\n\n- position without a type\n",
			expected: ErrInvalidProperty,
		},
		{
			name:     "method missing return",
			input:    "# Layer\n\n## Methods\n\n- sample(t: Number)\n",
			expected: ErrInvalidMethod,
		},
		{
			name:     "method parameter missing type",
			input:    "# Layer\n\n## Methods\n\n- sample(t) -> Number\n",
			expected: ErrInvalidMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClass([]byte(tt.input))
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected))
		})
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "transform.md"), []byte(transformDoc), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	layerDoc := "# Layer\n\nA composition layer.\n\n## Properties\n\n- index (Number) - layer index\n"
	subdir := filepath.Join(dir, "layer")
	assert.NoError(t, os.Mkdir(subdir, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(subdir, "layer.md"), []byte(layerDoc), 0o644))

	index, err := Load(dir)
	assert.NoError(t, err)

	assert.Equal(t, []string{"Layer", "Transform"}, index.ClassNames())
	assert.Equal(t, "A composition layer.", index.Classes["Layer"].Description)
}

func TestEnvironmentFromIndex(t *testing.T) {
	class, err := ParseClass([]byte(transformDoc))
	assert.NoError(t, err)

	index := &Index{Classes: map[string]ClassDoc{class.Name: *class}}

	env, err := index.Environment()
	assert.NoError(t, err)

	transform, ok := env.Lookup("transform")
	assert.True(t, ok)
	assert.Equal(t, typecheck.KindObject, transform.Kind)
	assert.True(t, transform.Props["position"].Equal(typecheck.Vector(2)))
	assert.True(t, transform.Props["valueAtTime"].Equal(
		typecheck.Method([]typecheck.Type{typecheck.Number()}, typecheck.Temporal(typecheck.Any()))))
}

func TestEnvironmentRejectsUnknownTypeName(t *testing.T) {
	index := &Index{Classes: map[string]ClassDoc{
		"Layer": {
			Name: "Layer",
			Properties: map[string]PropertyDoc{
				"mask": {Name: "mask", TypeName: "Widget"},
			},
		},
	}}

	_, err := index.Environment()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, typecheck.ErrUnknownTypeName))
}

func TestDocumentedSymbolsTypeCheck(t *testing.T) {
	// Documented classes join the built-ins through the chain environment,
	// so transform.position resolves while undocumented names still fail.
	class, err := ParseClass([]byte(transformDoc))
	assert.NoError(t, err)

	index := &Index{Classes: map[string]ClassDoc{class.Name: *class}}

	docEnv, err := index.Environment()
	assert.NoError(t, err)

	checker := typecheck.NewCheckerWithEnvironment(typecheck.ChainEnvironment{
		docEnv,
		typecheck.Builtins(),
	})

	expr, err := parser.Parse("transform.position + position")
	assert.NoError(t, err)

	actual, err := checker.Check(expr)
	assert.NoError(t, err)
	assert.True(t, actual.Equal(typecheck.Vector(2)))

	expr, err = parser.Parse("camera.zoom")
	assert.NoError(t, err)

	_, err = checker.Check(expr)
	assert.Error(t, err)
}
