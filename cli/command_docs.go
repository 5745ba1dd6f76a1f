package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/motionlint/motionlint/docindex"
)

// DocsOptions configures the docs index command.
type DocsOptions struct {
	Dir     string
	Verbose bool
}

// RunDocsIndex builds the documentation index and prints a summary of the
// indexed classes.
func RunDocsIndex(opts DocsOptions) error {
	index, err := docindex.Load(opts.Dir)
	if err != nil {
		return err
	}

	// Building the environment up front surfaces bad type names in the
	// docs as command failures instead of later checker surprises.
	if _, err := index.Environment(); err != nil {
		return err
	}

	color.Blue("Indexed %d classes from %s", len(index.Classes), opts.Dir)

	for _, name := range index.ClassNames() {
		class := index.Classes[name]
		fmt.Printf("%s: %d properties, %d methods\n", name, len(class.Properties), len(class.Methods))

		if !opts.Verbose {
			continue
		}

		for _, prop := range class.Properties {
			fmt.Printf("  %s (%s)\n", prop.Name, prop.TypeName)
		}
		for _, method := range class.Methods {
			fmt.Printf("  %s(...) -> %s\n", method.Name, method.ReturnType)
		}
	}

	return nil
}
