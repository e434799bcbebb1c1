// Command corresponding-generator writes, for every package it is pointed
// at, the move and from routines between each ordered pair of struct
// declarations in that package.
//
// Usage:
//
//	corresponding-generator gen [packages...]
//	corresponding-generator explain [packages...]
//
// Packages default to the scopes of corresponding.yaml, or "." without one.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
