// Command uncgo is the source-code beautifier's CLI entry point: a
// thin main that delegates straight to the cobra root command.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-uncgo/cmd/uncgo/cmd"
)

// Version information, populated by -ldflags at build time.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cmd.Version = version
	cmd.GitCommit = commit
	cmd.BuildDate = buildDate

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
