// Command sysml-codegen ingests the normative TTL, OSLC shape, XMI
// metamodel, Xtext grammar, and JSON-schema artifacts that describe the
// SysML v2/KerML textual notation and emits a deterministic Go source
// catalogue (kinds, subtype table, keyword literals, operator
// precedence), or cross-validates those artifacts against each other
// without emitting anything.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "sysml-codegen",
		Short:         "Generate and validate the SysML v2/KerML language catalogue from its normative sources",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newGenerateCommand(), newValidateCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sysml-codegen:", err)
		os.Exit(1)
	}
}
