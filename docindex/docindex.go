// Package docindex builds a class/method/property index from markdown API
// documentation. Each markdown file documents one scripting class: the H1
// heading names the class, the first paragraph describes it, and list items
// under "## Properties" and "## Methods" headings declare its members.
//
// The index can be flattened into a typecheck.Environment so that documented
// symbols participate in type checking alongside the built-ins.
package docindex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/motionlint/motionlint/typecheck"
)

// Sentinel errors
var (
	ErrNoClassHeading  = errors.New("no class heading found in documentation file")
	ErrInvalidProperty = errors.New("invalid property entry")
	ErrInvalidMethod   = errors.New("invalid method entry")
)

// PropertyDoc documents one property of a class.
type PropertyDoc struct {
	Name        string
	TypeName    string
	ReadOnly    bool
	Description string
}

// MethodDoc documents one method of a class.
type MethodDoc struct {
	Name        string
	ParamNames  []string
	ParamTypes  []string
	ReturnType  string
	Description string
}

// ClassDoc documents one scripting class.
type ClassDoc struct {
	Name        string
	Description string
	Properties  map[string]PropertyDoc
	Methods     map[string]MethodDoc
}

// Index is the documentation index over a docs directory.
type Index struct {
	Classes map[string]ClassDoc
}

// Load walks dir recursively and parses every .md file into the index.
func Load(dir string) (*Index, error) {
	index := &Index{Classes: make(map[string]ClassDoc)}

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read documentation file %s: %w", path, err)
		}

		class, err := ParseClass(content)
		if err != nil {
			return fmt.Errorf("failed to parse documentation file %s: %w", path, err)
		}

		index.Classes[class.Name] = *class

		return nil
	})
	if err != nil {
		return nil, err
	}

	return index, nil
}

// ClassNames returns the indexed class names in sorted order.
func (i *Index) ClassNames() []string {
	names := make([]string, 0, len(i.Classes))
	for name := range i.Classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Environment flattens the index into a typecheck environment: each class
// becomes an Object type whose properties and methods carry their declared
// types. Class names are exposed with a leading lower-case letter, matching
// how scripts reference host objects (class "Transform" -> "transform").
func (i *Index) Environment() (typecheck.Environment, error) {
	env := make(typecheck.MapEnvironment, len(i.Classes))

	for name, class := range i.Classes {
		members := make(map[string]typecheck.Type, len(class.Properties)+len(class.Methods))

		for _, prop := range class.Properties {
			propType, err := typecheck.ParseName(prop.TypeName)
			if err != nil {
				return nil, fmt.Errorf("class %s, property %s: %w", name, prop.Name, err)
			}
			members[prop.Name] = propType
		}

		for _, method := range class.Methods {
			params := make([]typecheck.Type, 0, len(method.ParamTypes))
			for _, paramType := range method.ParamTypes {
				parsed, err := typecheck.ParseName(paramType)
				if err != nil {
					return nil, fmt.Errorf("class %s, method %s: %w", name, method.Name, err)
				}
				params = append(params, parsed)
			}

			returnType, err := typecheck.ParseName(method.ReturnType)
			if err != nil {
				return nil, fmt.Errorf("class %s, method %s: %w", name, method.Name, err)
			}

			members[method.Name] = typecheck.Method(params, returnType)
		}

		env[scriptName(name)] = typecheck.ObjectOf(members)
	}

	return env, nil
}

// scriptName lowers the first letter of a class name.
func scriptName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
