package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var diffOptionsCmd = &cobra.Command{
	Use:   "diff-options <a> <b>",
	Short: "Print options whose resolved value differs between two config files",
	Long: `diff-options loads two config files into independent option sets and
prints every option name whose resolved value differs between them, in
the form "name: a-value -> b-value". Useful for auditing what a config
change actually affects before applying it.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiffOptions,
}

func init() {
	rootCmd.AddCommand(diffOptionsCmd)
}

func runDiffOptions(cmd *cobra.Command, args []string) error {
	a, err := loadOptions(args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}
	b, err := loadOptions(args[1])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[1], err)
	}

	any := false
	for _, name := range a.Names() {
		av, _ := a.Get(name)
		bv, _ := b.Get(name)
		if av.String() != bv.String() {
			fmt.Printf("%s: %s -> %s\n", name, av.String(), bv.String())
			any = true
		}
	}
	if !any {
		fmt.Println("no differences")
	}
	return nil
}
