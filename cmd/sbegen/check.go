package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sbe-schema-generator/internal/schema"
)

var errIdentifierCollisions = errors.New("identifier collisions found")

func NewCheckCommand(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "check NAME",
		Short: "report identifier collisions in a schema document",
		Long:  "Reports template ids shared by several messages and field or group ids reused within a message.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := schema.Open(args[0], nil, rc.Config.Store())
			if err != nil {
				return err
			}

			diags, err := schema.CheckIdentifiers(st)
			if err != nil {
				return err
			}

			printDiagnostics(cmd.OutOrStdout(), diags)

			if !diags.IsValid() {
				return fmt.Errorf("%w in %s: %w", errIdentifierCollisions, st.Location(), diags.Error())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("ok"), st.Location())

			return nil
		},
	}
}
