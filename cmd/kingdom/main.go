// kingdom generates thematically linked kingdoms from a scraped card catalog.
//
// Usage:
//
//	kingdom generate [-f cards.json] [-s <set>]... [-c <card>]... [-m 3] [--seed N]
//	kingdom list sets [-f cards.json]
//	kingdom list cards [-f cards.json] [-s <set>]...
package main

import (
	"fmt"
	"os"
)

// version, commit, date are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
