package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"sbe-schema-generator/internal/diagnostic"
	"sbe-schema-generator/internal/gen"
)

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	if diags == nil || diags.Len() == 0 {
		return
	}

	fmt.Fprintln(w, diags.String())
}

func printGenerated(w io.Writer, g *gen.Generator) {
	fmt.Fprintf(w, "%s %s\n", color.GreenString("generated"), g.Path())
}
