package docindex

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Member entry grammar, after markdown inline formatting is stripped:
//
//	Properties: name (TypeName) - description
//	            name (TypeName, read-only) - description
//	Methods:    name(param: TypeName, ...) -> TypeName - description
const readOnlyMarker = "read-only"

// ParseClass parses one markdown documentation file into a ClassDoc.
func ParseClass(content []byte) (*ClassDoc, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(content))

	class := &ClassDoc{
		Properties: make(map[string]PropertyDoc),
		Methods:    make(map[string]MethodDoc),
	}

	var section string

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			heading := extractText(node, content)
			if node.Level == 1 && class.Name == "" {
				class.Name = heading
			} else if node.Level == 2 {
				section = strings.ToLower(heading)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if class.Name != "" && section == "" && class.Description == "" {
				class.Description = extractText(node, content)
			}
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			entry := extractText(node, content)

			switch section {
			case "properties":
				prop, err := parsePropertyEntry(entry)
				if err != nil {
					return ast.WalkStop, err
				}
				class.Properties[prop.Name] = prop
			case "methods":
				method, err := parseMethodEntry(entry)
				if err != nil {
					return ast.WalkStop, err
				}
				class.Methods[method.Name] = method
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	if class.Name == "" {
		return nil, ErrNoClassHeading
	}

	return class, nil
}

// extractText collects the plain text of a node's inline content.
func extractText(node ast.Node, content []byte) string {
	var result strings.Builder

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch textNode := n.(type) {
		case *ast.Text:
			segment := textNode.Segment
			result.Write(content[segment.Start:segment.Stop])
		case *ast.String:
			result.Write(textNode.Value)
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(result.String())
}

// parsePropertyEntry parses "name (TypeName[, read-only]) - description".
func parsePropertyEntry(entry string) (PropertyDoc, error) {
	open := strings.IndexByte(entry, '(')
	if open < 0 {
		return PropertyDoc{}, fmt.Errorf("%w: %q", ErrInvalidProperty, entry)
	}

	name := strings.TrimSpace(entry[:open])
	if name == "" {
		return PropertyDoc{}, fmt.Errorf("%w: missing name in %q", ErrInvalidProperty, entry)
	}

	inner, rest, ok := matchParens(entry[open:])
	if !ok {
		return PropertyDoc{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidProperty, entry)
	}

	prop := PropertyDoc{
		Name:        name,
		TypeName:    inner,
		Description: trimDescription(rest),
	}

	if typeName, found := strings.CutSuffix(prop.TypeName, ", "+readOnlyMarker); found {
		prop.TypeName = typeName
		prop.ReadOnly = true
	}

	return prop, nil
}

// parseMethodEntry parses "name(param: TypeName, ...) -> TypeName - description".
func parseMethodEntry(entry string) (MethodDoc, error) {
	signature, returnPart, found := strings.Cut(entry, "->")
	if !found {
		return MethodDoc{}, fmt.Errorf("%w: missing return type in %q", ErrInvalidMethod, entry)
	}

	open := strings.IndexByte(signature, '(')
	if open < 0 {
		return MethodDoc{}, fmt.Errorf("%w: missing parameter list in %q", ErrInvalidMethod, entry)
	}

	name := strings.TrimSpace(signature[:open])
	if name == "" {
		return MethodDoc{}, fmt.Errorf("%w: missing name in %q", ErrInvalidMethod, entry)
	}

	params, _, ok := matchParens(signature[open:])
	if !ok {
		return MethodDoc{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidMethod, entry)
	}

	method := MethodDoc{Name: name}

	for _, param := range splitTopLevel(params) {
		paramName, paramType, found := strings.Cut(param, ":")
		if !found {
			return MethodDoc{}, fmt.Errorf("%w: parameter %q needs a type in %q", ErrInvalidMethod, param, entry)
		}
		method.ParamNames = append(method.ParamNames, strings.TrimSpace(paramName))
		method.ParamTypes = append(method.ParamTypes, strings.TrimSpace(paramType))
	}

	returnName, description, _ := strings.Cut(returnPart, " - ")
	method.ReturnType = strings.TrimSpace(returnName)
	method.Description = strings.TrimSpace(description)

	if method.ReturnType == "" {
		return MethodDoc{}, fmt.Errorf("%w: missing return type in %q", ErrInvalidMethod, entry)
	}

	return method, nil
}

// matchParens takes a string starting with '(' and returns the contents of
// the balanced group and whatever follows it.
func matchParens(s string) (inner, rest string, ok bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], true
			}
		}
	}
	return "", "", false
}

// splitTopLevel splits on commas that are not nested inside parentheses.
func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	if strings.TrimSpace(s[start:]) != "" {
		parts = append(parts, s[start:])
	}

	return parts
}

// trimDescription strips the leading " - " separator from a description tail.
func trimDescription(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "-")
	return strings.TrimSpace(s)
}
