package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-uncgo/internal/lang"
	"github.com/cwbudde/go-uncgo/internal/options"
	"github.com/cwbudde/go-uncgo/internal/source"
	"github.com/cwbudde/go-uncgo/internal/tokenizer"
	"github.com/cwbudde/go-uncgo/internal/uncgo"
)

var (
	dumpOptionsGroup  string
	dumpOptionsDetect string
)

var dumpOptionsCmd = &cobra.Command{
	Use:   "dump-options",
	Short: "Print the full option registry",
	Long: `dump-options prints every registered option's name, current
value (the default, or the detected value under --detect), group, and
one-line help. Useful as a starting point for
authoring a --config file: redirect the output and edit the values you
want to change.

  uncgo dump-options
  uncgo dump-options --group indent`,
	RunE: runDumpOptions,
}

func init() {
	rootCmd.AddCommand(dumpOptionsCmd)
	dumpOptionsCmd.Flags().StringVar(&dumpOptionsGroup, "group", "", "only print options in this group (space, newline, indent, align, ...)")
	dumpOptionsCmd.Flags().StringVar(&dumpOptionsDetect, "detect", "", "propose option values by observing this sample file")
}

func runDumpOptions(cmd *cobra.Command, args []string) error {
	set := options.NewDefaultSet()

	if dumpOptionsDetect != "" {
		raw, err := os.ReadFile(dumpOptionsDetect)
		if err != nil {
			return err
		}
		_, text, err := source.Detect(raw)
		if err != nil {
			return err
		}
		l := uncgo.LanguageFor(dumpOptionsDetect, lang.None)
		list := tokenizer.New(text, tokenizer.WithLanguage(l)).Tokenize()
		proposed := options.SimpleDetector{}.Detect(list)
		options.ApplyDetected(set, proposed)
	}

	for _, name := range set.Names() {
		sp, _ := set.Spec(name)
		if dumpOptionsGroup != "" && sp.Group != dumpOptionsGroup {
			continue
		}
		v, _ := set.Get(name)
		if sp.Doc != "" {
			fmt.Printf("%-30s = %-10s # [%s] %s\n", name, v.String(), sp.Group, sp.Doc)
		} else {
			fmt.Printf("%-30s = %-10s # [%s]\n", name, v.String(), sp.Group)
		}
	}
	return nil
}
