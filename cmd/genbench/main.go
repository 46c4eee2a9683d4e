// SPDX-License-Identifier: MIT

// Command genbench measures and verifies the generic aggregates over the
// bucketed regression sequence.
//
//	genbench run --size 1000000 --rounds 3 --cases int32,float64,decimal
//	genbench verify --format yaml
//	genbench version
//
// Settings come from flags, then GENBENCH_* environment variables, then an
// optional YAML config file (--config, or ./genbench.yaml).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
}
