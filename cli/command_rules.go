package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/motionlint/motionlint/validator"
)

// RunRulesCheck loads and validates a rule set file.
func RunRulesCheck(path string) error {
	rules, err := validator.LoadRuleSet(path)
	if err != nil {
		return err
	}

	color.Green("OK: %d property rules", len(rules.Properties))

	for _, rule := range rules.Properties {
		constraints := ""
		if rule.Min != nil || rule.Max != nil {
			constraints = " (ranged)"
		}
		if len(rule.Enum) > 0 {
			constraints = fmt.Sprintf(" (%d allowed values)", len(rule.Enum))
		}
		fmt.Printf("%s: %s%s\n", rule.Name, rule.Type, constraints)
	}

	return nil
}
