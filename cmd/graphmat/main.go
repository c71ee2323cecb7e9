// Command graphmat exercises a graphmat store from the command line: it runs
// the built-in demo, loads YAML/TOML scenes for point lookups and walks, and
// fills dense blocks to measure throughput.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "graphmat:", err)
		os.Exit(1)
	}
}
