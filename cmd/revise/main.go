// Command revise is a terminal text editor with incremental syntax
// highlighting.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
