package validator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/motionlint/motionlint/parser"
	"github.com/motionlint/motionlint/tokenizer"
	"github.com/motionlint/motionlint/typecheck"
	"github.com/motionlint/motionlint/valerr"
)

// Result is the outcome of validating one expression against one property.
// Either InferredType is set and Errors is empty, or the expression was
// rejected and Errors holds the diagnostics.
type Result struct {
	Property     string                   `json:"property"`
	Expression   string                   `json:"expression"`
	InferredType string                   `json:"inferred_type,omitempty"`
	Valid        bool                     `json:"valid"`
	Errors       []*valerr.ValidatorError `json:"errors,omitempty"`
}

// Report bundles the results of one validation run.
type Report struct {
	ID      string   `json:"id"`
	Results []Result `json:"results"`
}

// NewReport creates an empty report with a fresh ID.
func NewReport() *Report {
	return &Report{ID: uuid.NewString()}
}

// Add appends a result to the report.
func (r *Report) Add(result Result) {
	r.Results = append(r.Results, result)
}

// Valid reports whether every result in the report passed.
func (r *Report) Valid() bool {
	for _, result := range r.Results {
		if !result.Valid {
			return false
		}
	}
	return true
}

// ErrorCount returns the total number of diagnostics in the report.
func (r *Report) ErrorCount() int {
	count := 0
	for _, result := range r.Results {
		count += len(result.Errors)
	}
	return count
}

// PropertyValidator validates expressions assigned to animatable properties.
// It runs the expression front end (parse, then type check) and applies the
// property's rule on top of the inferred type.
type PropertyValidator struct {
	checker *typecheck.Checker
	rules   *RuleSet
}

// New creates a PropertyValidator over the built-in type environment.
func New(rules *RuleSet) *PropertyValidator {
	return &PropertyValidator{
		checker: typecheck.NewChecker(),
		rules:   rules,
	}
}

// NewWithEnvironment creates a PropertyValidator over a caller-supplied
// environment, e.g. the built-ins extended with a documentation index.
func NewWithEnvironment(rules *RuleSet, env typecheck.Environment) *PropertyValidator {
	return &PropertyValidator{
		checker: typecheck.NewCheckerWithEnvironment(env),
		rules:   rules,
	}
}

// ValidateExpression validates one expression for one property. The front
// end is atomic: on the first parse or type error the result carries that
// single diagnostic and no inferred type.
func (v *PropertyValidator) ValidateExpression(property, source string) Result {
	result := Result{Property: property, Expression: source}

	expr, err := parser.Parse(source)
	if err != nil {
		result.Errors = valerr.AsValidatorErrors(err)
		return result
	}

	inferred, err := v.checker.Check(expr)
	if err != nil {
		result.Errors = valerr.AsValidatorErrors(err)
		return result
	}

	result.InferredType = inferred.String()

	if rule, ok := v.rules.Rule(property); ok {
		if ruleErr := v.applyRule(rule, expr, inferred); ruleErr != nil {
			result.Errors = valerr.AsValidatorErrors(ruleErr)
			return result
		}
	}

	result.Valid = true

	return result
}

// ValidateAll validates a set of property/expression pairs and bundles the
// results under a fresh report ID.
func (v *PropertyValidator) ValidateAll(assignments map[string]string) *Report {
	report := NewReport()

	for property, source := range assignments {
		report.Results = append(report.Results, v.ValidateExpression(property, source))
	}

	return report
}

// applyRule checks the inferred type against the property rule, plus the
// range and enum constraints for literal expressions.
func (v *PropertyValidator) applyRule(rule PropertyRule, expr *parser.Expression, inferred typecheck.Type) error {
	expected, err := rule.ExpectedType()
	if err != nil {
		return v.propertyError(expr, "Invalid rule type for property %s: %s", rule.Name, rule.Type)
	}

	if !typecheck.Matches(inferred, expected) {
		return v.propertyError(expr, "Property %s expects %s, expression has type %s", rule.Name, expected, inferred)
	}

	// Range and enum constraints only apply to single-literal expressions;
	// computed values are checked at animation time by the host.
	if len(expr.Tokens) != 1 {
		return nil
	}

	token := expr.Tokens[0]

	switch token.Type {
	case tokenizer.NUMBER:
		if rule.Min != nil && token.Num < *rule.Min {
			return v.propertyError(expr, "Value %g below minimum %g for property %s", token.Num, *rule.Min, rule.Name)
		}
		if rule.Max != nil && token.Num > *rule.Max {
			return v.propertyError(expr, "Value %g above maximum %g for property %s", token.Num, *rule.Max, rule.Name)
		}
	case tokenizer.STRING:
		if !rule.Allows(token.Value) {
			return v.propertyError(expr, "Value %q is not one of the allowed values for property %s", token.Value, rule.Name)
		}
	}

	return nil
}

func (v *PropertyValidator) propertyError(expr *parser.Expression, format string, args ...any) error {
	return valerr.New(valerr.CategoryProperty, fmt.Sprintf(format, args...), expr.Context(""))
}
