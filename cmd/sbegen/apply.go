package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"

	"sbe-schema-generator/internal/gen"
	"sbe-schema-generator/internal/manifest"
)

var errInvalidManifest = errors.New("manifest has errors")

func RegisterApplyFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("skip-generate", false, "only update the JSON document")
}

func NewApplyCommand(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "apply MANIFEST",
		Short: "register a manifest into its schema document",
		Long: fmt.Sprintf(`Validates the YAML manifest, registers its types and messages into the
schema document it names and regenerates the XML.

A manifest with a complete %s replaces the document. Without one the
document must already exist. Registration is all or nothing.`, color.YellowString("header")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			f, err := manifest.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := manifest.Validate(f)
			if !diags.IsValid() {
				printDiagnostics(out, diags)
				return fmt.Errorf("%w: %d error(s)", errInvalidManifest, len(diags.Errors))
			}

			st, err := manifest.Open(f, rc.Config.Store())
			if err != nil {
				return err
			}

			report, err := manifest.Apply(st, f)
			if err != nil {
				return err
			}

			diags.Merge(st.Notices())

			fmt.Fprintf(out, "%s %s: %d added, %d merged, %d unchanged\n",
				color.GreenString("applied"), st.Location(), report.Added, report.Merged, report.Existing)

			if cobrautil.MustGetBool(cmd, "skip-generate") {
				printDiagnostics(out, diags)
				return nil
			}

			g, warnings, err := gen.Compile(st, rc.Config.Generator())
			if err != nil {
				return err
			}

			diags.Merge(*warnings)
			printDiagnostics(out, diags)
			printGenerated(out, g)

			return nil
		},
	}
}
