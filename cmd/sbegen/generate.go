package main

import (
	"github.com/spf13/cobra"

	"sbe-schema-generator/internal/gen"
	"sbe-schema-generator/internal/schema"
)

func NewGenerateCommand(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "generate NAME",
		Short: "generate the SBE XML of an existing schema document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := schema.Open(args[0], nil, rc.Config.Store())
			if err != nil {
				return err
			}

			g, warnings, err := gen.Compile(st, rc.Config.Generator())
			if err != nil {
				return err
			}

			printDiagnostics(cmd.OutOrStdout(), warnings)
			printGenerated(cmd.OutOrStdout(), g)

			return nil
		},
	}
}
