package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestGatherExpressions(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "expressions.txt", "position + position\n\n// comment\nopacity * 2\n")

	expressions, err := gatherExpressions(ValidateOptions{
		Expressions: []string{"time"},
		File:        file,
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"time", "position + position", "opacity * 2"}, expressions)
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()

	rules := writeFile(t, dir, "rules.yaml", "properties:\n  - name: opacity\n    type: Number\n    min: 0\n    max: 100\n")
	config := writeFile(t, dir, "motionlint.yaml", "rule_files:\n  - "+rules+"\n")

	err := RunValidate(ValidateOptions{
		ConfigPath:  config,
		Expressions: []string{"time * 2"},
		Property:    "opacity",
		Quiet:       true,
	})
	assert.NoError(t, err)

	err = RunValidate(ValidateOptions{
		ConfigPath:  config,
		Expressions: []string{"200"},
		Property:    "opacity",
		Quiet:       true,
	})
	assert.Error(t, err)
}

func TestRunValidateWithDocIndex(t *testing.T) {
	dir := t.TempDir()

	docsDir := filepath.Join(dir, "docs")
	assert.NoError(t, os.Mkdir(docsDir, 0o755))
	writeFile(t, docsDir, "transform.md", "# Transform\n\nTransform group.\n\n## Properties\n\n- position (Vector(2)) - layer position\n")

	config := writeFile(t, dir, "motionlint.yaml", "docs_dir: "+docsDir+"\nvalidation:\n  use_doc_index: true\n")

	err := RunValidate(ValidateOptions{
		ConfigPath:  config,
		Expressions: []string{"transform.position + position"},
		Quiet:       true,
	})
	assert.NoError(t, err)
}

func TestRunValidateNoExpressions(t *testing.T) {
	err := RunValidate(ValidateOptions{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	assert.Error(t, err)
}
