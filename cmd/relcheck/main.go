// Command relcheck analyzes binary relations over finite sets.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/relcheck/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
