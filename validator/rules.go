// Package validator ties the expression front end to per-property
// validation: each animatable property can declare an expected type, a
// numeric range, and an enumeration of allowed string values, loaded from a
// YAML rule set.
package validator

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/motionlint/motionlint/typecheck"
)

// Sentinel errors
var (
	ErrDuplicateRule      = errors.New("duplicate property rule")
	ErrInvalidRuleRange   = errors.New("rule range minimum exceeds maximum")
	ErrRuleEnumOnlyString = errors.New("enum rules require the String type")
)

// PropertyRule declares validation constraints for one property.
type PropertyRule struct {
	Name string   `yaml:"name"`
	Type string   `yaml:"type"`
	Min  *float64 `yaml:"min,omitempty"`
	Max  *float64 `yaml:"max,omitempty"`
	Enum []string `yaml:"enum,omitempty"`
}

// ExpectedType parses the rule's declared type.
func (r PropertyRule) ExpectedType() (typecheck.Type, error) {
	return typecheck.ParseName(r.Type)
}

// RuleSet is a collection of property rules.
type RuleSet struct {
	Properties []PropertyRule `yaml:"properties"`
}

// LoadRuleSet reads and validates a YAML rule set file.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule set %s: %w", path, err)
	}

	rules, err := ParseRuleSet(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule set %s: %w", path, err)
	}

	return rules, nil
}

// ParseRuleSet parses and validates YAML rule set content. Unknown fields
// are rejected.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var rules RuleSet

	if err := yaml.UnmarshalWithOptions(data, &rules, yaml.Strict()); err != nil {
		return nil, err
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return &rules, nil
}

// Validate checks the rule set for internal consistency: parseable type
// names, unique property names, orderly ranges, and enums only on String
// properties.
func (rs *RuleSet) Validate() error {
	seen := make(map[string]bool, len(rs.Properties))

	for _, rule := range rs.Properties {
		if seen[rule.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateRule, rule.Name)
		}
		seen[rule.Name] = true

		expected, err := rule.ExpectedType()
		if err != nil {
			return fmt.Errorf("rule %s: %w", rule.Name, err)
		}

		if rule.Min != nil && rule.Max != nil && *rule.Min > *rule.Max {
			return fmt.Errorf("%w: %s", ErrInvalidRuleRange, rule.Name)
		}

		if len(rule.Enum) > 0 && expected.Kind != typecheck.KindString {
			return fmt.Errorf("%w: %s", ErrRuleEnumOnlyString, rule.Name)
		}
	}

	return nil
}

// Rule returns the rule for a property name.
func (rs *RuleSet) Rule(name string) (PropertyRule, bool) {
	for _, rule := range rs.Properties {
		if rule.Name == name {
			return rule, true
		}
	}
	return PropertyRule{}, false
}

// Allows reports whether value is in the rule's enumeration. Rules without
// an enum allow every value.
func (r PropertyRule) Allows(value string) bool {
	if len(r.Enum) == 0 {
		return true
	}
	return slices.Contains(r.Enum, value)
}
