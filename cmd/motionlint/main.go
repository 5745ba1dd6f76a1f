package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/motionlint/motionlint/cli"
)

// Context represents the global context for commands
type Context struct {
	Config string
	Quiet  bool
}

// ValidateCmd represents the validate command
type ValidateCmd struct {
	Expressions []string `arg:"" optional:"" help:"Expressions to validate"`
	File        string   `help:"Read expressions from file, one per line" short:"f"`
	Property    string   `help:"Property name whose rule the expressions must satisfy" short:"p"`
	Format      string   `help:"Output format (text, json); overrides config" enum:",text,json" default:""`
}

// Run executes the validate command
func (cmd *ValidateCmd) Run(ctx *Context) error {
	return cli.RunValidate(cli.ValidateOptions{
		ConfigPath:  ctx.Config,
		Expressions: cmd.Expressions,
		File:        cmd.File,
		Property:    cmd.Property,
		Format:      cmd.Format,
		Quiet:       ctx.Quiet,
	})
}

// DocsCmd represents the docs command group
type DocsCmd struct {
	Index DocsIndexCmd `cmd:"" help:"Build and print the documentation index"`
}

// DocsIndexCmd represents the docs index command
type DocsIndexCmd struct {
	Dir     string `arg:"" help:"Directory of markdown API documentation"`
	Verbose bool   `help:"List every indexed member" short:"v"`
}

// Run executes the docs index command
func (cmd *DocsIndexCmd) Run(ctx *Context) error {
	return cli.RunDocsIndex(cli.DocsOptions{Dir: cmd.Dir, Verbose: cmd.Verbose})
}

// RulesCmd represents the rules command group
type RulesCmd struct {
	Check RulesCheckCmd `cmd:"" help:"Validate a property rule set file"`
}

// RulesCheckCmd represents the rules check command
type RulesCheckCmd struct {
	File string `arg:"" help:"Rule set YAML file"`
}

// Run executes the rules check command
func (cmd *RulesCheckCmd) Run(ctx *Context) error {
	return cli.RunRulesCheck(cmd.File)
}

var commands struct {
	Config string `help:"Configuration file path" default:"motionlint.yaml"`
	Quiet  bool   `help:"Only report failures" short:"q"`

	Validate ValidateCmd `cmd:"" help:"Validate expressions"`
	Docs     DocsCmd     `cmd:"" help:"Documentation index commands"`
	Rules    RulesCmd    `cmd:"" help:"Rule set commands"`
}

func main() {
	ctx := kong.Parse(&commands,
		kong.Name("motionlint"),
		kong.Description("Validate motion-graphics animation expressions"),
		kong.UsageOnError(),
	)

	err := ctx.Run(&Context{Config: commands.Config, Quiet: commands.Quiet})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
