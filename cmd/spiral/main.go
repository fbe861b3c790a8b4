// spiral prints the values of integer grids in spiral order.
//
// Usage:
//
//	spiral demo
//	spiral walk '[[0, 1], [2, 3]]'
//	spiral file grids.yaml [--workers=4]
//
// Global flags: --log-level, --json, --env-file.
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
