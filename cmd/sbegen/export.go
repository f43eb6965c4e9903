package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"

	"sbe-schema-generator/internal/manifest"
	"sbe-schema-generator/internal/schema"
)

func RegisterExportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "write the manifest to this path instead of stdout")
}

func NewExportCommand(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "export NAME",
		Short: "write a manifest that recreates a schema document",
		Long: fmt.Sprintf("Prints the YAML manifest of schema NAME, header included, so that %s on it rebuilds the document.",
			color.YellowString("apply")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := schema.Open(args[0], nil, rc.Config.Store())
			if err != nil {
				return err
			}

			f, err := manifest.FromStore(st)
			if err != nil {
				return err
			}

			path := cobrautil.MustGetString(cmd, "output")
			if path == "" {
				data, err := manifest.Marshal(f)
				if err != nil {
					return err
				}

				_, err = cmd.OutOrStdout().Write(data)

				return err
			}

			if err := manifest.WriteFile(f, path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("exported"), path)

			return nil
		},
	}
}
