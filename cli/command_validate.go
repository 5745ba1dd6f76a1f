// Package cli implements the command logic behind the motionlint binary.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/motionlint/motionlint"
	"github.com/motionlint/motionlint/docindex"
	"github.com/motionlint/motionlint/typecheck"
	"github.com/motionlint/motionlint/valerr"
	"github.com/motionlint/motionlint/validator"
)

// ValidateOptions configures a validation run.
type ValidateOptions struct {
	ConfigPath  string
	Expressions []string
	File        string
	Property    string
	Format      string
	Quiet       bool
}

// RunValidate validates expressions given on the command line or read from
// a file (one per line, blank lines and lines starting with // skipped).
// It returns an error when any expression fails, so the binary exits
// non-zero.
func RunValidate(opts ValidateOptions) error {
	config, err := motionlint.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	format := config.Output.Format
	if opts.Format != "" {
		format = opts.Format
	}

	expressions, err := gatherExpressions(opts)
	if err != nil {
		return err
	}
	if len(expressions) == 0 {
		return motionlint.ErrNoExpressions
	}

	v, err := buildValidator(config)
	if err != nil {
		return err
	}

	report := validator.NewReport()
	for _, source := range expressions {
		report.Add(v.ValidateExpression(opts.Property, source))
	}

	return renderReport(report, format, opts.Quiet)
}

func gatherExpressions(opts ValidateOptions) ([]string, error) {
	expressions := append([]string(nil), opts.Expressions...)

	if opts.File != "" {
		content, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read expression file: %w", err)
		}

		for _, line := range strings.Split(string(content), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "//") {
				continue
			}
			expressions = append(expressions, line)
		}
	}

	return expressions, nil
}

// buildValidator assembles the rule set and type environment described by
// the configuration.
func buildValidator(config *motionlint.Config) (*validator.PropertyValidator, error) {
	rules := &validator.RuleSet{}

	for _, file := range config.RuleFiles {
		loaded, err := validator.LoadRuleSet(file)
		if err != nil {
			return nil, err
		}
		rules.Properties = append(rules.Properties, loaded.Properties...)
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	env := typecheck.Environment(typecheck.Builtins())

	if config.Validation.UseDocIndex {
		index, err := docindex.Load(config.DocsDir)
		if err != nil {
			return nil, err
		}

		docEnv, err := index.Environment()
		if err != nil {
			return nil, err
		}

		env = typecheck.ChainEnvironment{docEnv, typecheck.Builtins()}
	}

	return validator.NewWithEnvironment(rules, env), nil
}

func renderReport(report *validator.Report, format string, quiet bool) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Println(string(data))
	case "text":
		renderTextReport(report, quiet)
	default:
		return fmt.Errorf("%w: %s", motionlint.ErrUnknownOutputFormat, format)
	}

	if !report.Valid() {
		failed := 0
		for _, result := range report.Results {
			if !result.Valid {
				failed++
			}
		}
		return fmt.Errorf("%d of %d expressions failed validation", failed, len(report.Results))
	}

	return nil
}

func renderTextReport(report *validator.Report, quiet bool) {
	reporter := valerr.NewReporter(valerr.ReportConfig{Format: valerr.FormatText, ShowSnippet: true})

	for _, result := range report.Results {
		if result.Valid {
			if !quiet {
				color.Green("OK   %-12s %s", result.InferredType, result.Expression)
			}
			continue
		}

		color.Red("FAIL %s", result.Expression)

		rendered, err := reporter.Render(result.Errors)
		if err == nil {
			fmt.Print(rendered)
		}
	}
}
