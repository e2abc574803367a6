// Command digitbin-demo drives a Digit-Bin Index end to end: it builds a
// synthetic weighted population, then alternates sequential and batch
// draws against it, logging index stats as it goes. It exists to
// exercise the package the way a caller would, kept separate from the
// index's own public surface, which carries no CLI or argument parsing.
package main

import (
	"fmt"
	"os"

	"github.com/digitbin/digitbin/cmd/digitbin-demo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
