// btree drives behaviour trees from the command line.
//
// Usage:
//
//	btree dump [--config=<tree.yaml>] [--fingerprint]
//	btree run  [--config=<tree.yaml>] [--agents=N] [--ticks=N] [--interval=100ms]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
