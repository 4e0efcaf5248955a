// Package cmd holds the uncgo CLI's cobra command tree: the root
// command, the version template, and one file per subcommand.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information (set by build flags via cmd/uncgo/main.go).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "uncgo",
	Short: "A source-code beautifier for the C family of languages",
	Long: `uncgo reformats C, C++, Objective-C, C#, D, Java, Vala, Pawn, and
ECMAScript source according to a configurable set of style rules:
spacing, newlines, brace placement, indentation, and alignment.

It does not perform semantic analysis, name resolution, type checking,
macro expansion, or preprocessor evaluation — only whitespace and the
explicitly option-governed punctuation (braces, parens, semicolons) are
ever changed; every other token's text is preserved exactly.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
