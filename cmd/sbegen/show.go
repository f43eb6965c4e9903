package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"

	"sbe-schema-generator/internal/schema"
)

func RegisterShowFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("raw", false, "dump the whole schema structure")
}

func NewShowCommand(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "print what a schema document holds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := schema.Open(args[0], nil, rc.Config.Store())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if cobrautil.MustGetBool(cmd, "raw") {
				snapshot, err := st.Snapshot()
				if err != nil {
					return err
				}

				spew.Fdump(out, snapshot)

				return nil
			}

			return showSummary(out, st)
		},
	}
}

func showSummary(w io.Writer, st *schema.Store) error {
	sc, err := st.Snapshot()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "schema %s (package %s, id %d, version %d, semantic version %s, %s)\n",
		color.YellowString(st.Name()), sc.Package, sc.SchemaID, sc.Version, sc.SemanticVersion, sc.ByteOrder)

	for _, c := range []struct {
		label string
		count int
	}{
		{schema.CollectionNumberTypes.String(), len(sc.NumberTypes)},
		{schema.CollectionStringTypes.String(), len(sc.StringTypes)},
		{schema.CollectionEnumTypes.String(), len(sc.EnumTypes)},
		{schema.CollectionSetTypes.String(), len(sc.SetTypes)},
		{schema.CollectionCompositeTypes.String(), len(sc.CompositeTypes)},
		{schema.CollectionMessages.String(), len(sc.Messages)},
	} {
		fmt.Fprintf(w, "  %-28s %d\n", c.label, c.count)
	}

	for _, c := range []struct {
		label string
		types []schema.CustomTypeDef
	}{
		{"enum", sc.EnumTypes},
		{"set", sc.SetTypes},
	} {
		for _, t := range c.types {
			fmt.Fprintf(w, "%s %s (%s): %s\n",
				c.label, color.YellowString(t.Name), t.EncodingType, strings.Join(t.Structure.Keys(), ", "))
		}
	}

	for _, m := range sc.Messages {
		fmt.Fprintf(w, "message %s (template %d): %d fields, %d groups, %d columns\n",
			color.YellowString(m.Name), m.TemplateID, len(m.SbeFields), len(m.RepeatingGroups), len(m.DocumentColumns))
	}

	return st.IterateDocumentFields(func(msg schema.Message, field json.RawMessage) error {
		_, err := fmt.Fprintf(w, "  %s document field %s\n", msg.Name, field)
		return err
	})
}
