// Command meetmap draws the Educause annual meeting locations on a map of the
// continental United States.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/meetmap/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
