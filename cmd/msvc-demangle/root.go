package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Saeed-Rezaee/msvc-demangler/demangle"
)

var output io.Writer

var rootCmd = &cobra.Command{
	Use:   "msvc-demangle <symbol>",
	Short: "Demangle a Microsoft Visual C++ symbol name",
	Long: `msvc-demangle reads a single mangled MSVC symbol name and prints
the C++ declaration it encodes.

A name that does not look mangled (does not start with '?') is printed
back unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runDemangle,
}

func init() {
	output = os.Stdout
}

func runDemangle(cmd *cobra.Command, args []string) error {
	decl, err := demangle.Demangle(args[0])
	if err != nil {
		return fmt.Errorf("demangle %q: %w", args[0], err)
	}
	fmt.Fprintln(output, decl)
	return nil
}
