// Command moltype matches substructure patterns against molecules, assigns
// atom types from YAML rule files, and renders the results as PNG.
package main

import (
	"fmt"
	"os"
)

// Build-time variable injected via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "moltype: %v\n", err)
		os.Exit(1)
	}
}
