// Package main is the sbegen command line.
//
// sbegen keeps one JSON document per SBE schema and compiles it into an SBE
// XML message schema:
//   - init creates an empty document from header flags
//   - apply registers a YAML manifest into a document and regenerates the XML
//   - generate rebuilds the XML from an existing document
//   - check reports identifier collisions
//   - show prints what a document holds
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := NewProgram("sbegen").Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
