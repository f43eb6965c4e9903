package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"

	"sbe-schema-generator/internal/schema"
)

// DefaultSBENamespace is the SBE namespace URI of the 2016 standard.
const DefaultSBENamespace = "http://fixprotocol.io/2016/sbe"

func RegisterInitFlags(cmd *cobra.Command) {
	cmd.Flags().String("package", "", "package attribute of the schema")
	cmd.Flags().Int("schema-id", 1, "id attribute of the schema")
	cmd.Flags().Int("version", 0, "version attribute of the schema")
	cmd.Flags().String("semantic-version", "", "semanticVersion attribute of the schema")
	cmd.Flags().String("description", "", "description attribute of the schema")
	cmd.Flags().String("byte-order", "littleEndian", `byteOrder attribute of the schema ("littleEndian", "bigEndian")`)
	cmd.Flags().String("sbe-namespace", DefaultSBENamespace, "URI bound to the sbe prefix")
	cmd.Flags().String("enx-namespace", "", "URI bound to the enx prefix")
	cmd.Flags().String("str-namespace", "", "URI bound to the str prefix")
	cmd.Flags().String("ext-namespace", "", "URI bound to the ext prefix")
	cmd.Flags().Bool("force", false, "replace an existing document")
}

func NewInitCommand(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "init NAME",
		Short: "create an empty schema document",
		Long: fmt.Sprintf("Creates the JSON document of schema NAME from the header flags.\nEvery textual header value is required. An existing document is kept unless %s is given.",
			color.YellowString("--force")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header := headerFromFlags(cmd)
			if missing := missingHeaderFlags(header); len(missing) > 0 {
				return fmt.Errorf("missing required header values: %s", strings.Join(missing, ", "))
			}

			cfg := rc.Config.Store()
			path := cfg.Path(args[0])

			if !cobrautil.MustGetBool(cmd, "force") {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("schema document %s already exists", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			st, err := schema.Open(args[0], &header, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("created"), st.Location())

			return nil
		},
	}
}

func headerFromFlags(cmd *cobra.Command) schema.Header {
	return schema.Header{
		Namespaces: schema.Namespaces{
			SBE: cobrautil.MustGetString(cmd, "sbe-namespace"),
			ENX: cobrautil.MustGetString(cmd, "enx-namespace"),
			STR: cobrautil.MustGetString(cmd, "str-namespace"),
			EXT: cobrautil.MustGetString(cmd, "ext-namespace"),
		},
		Package:         cobrautil.MustGetString(cmd, "package"),
		SchemaID:        schema.Integer(cobrautil.MustGetInt(cmd, "schema-id")),
		Version:         schema.Integer(cobrautil.MustGetInt(cmd, "version")),
		SemanticVersion: cobrautil.MustGetString(cmd, "semantic-version"),
		Description:     cobrautil.MustGetString(cmd, "description"),
		ByteOrder:       cobrautil.MustGetString(cmd, "byte-order"),
	}
}

func missingHeaderFlags(h schema.Header) []string {
	var missing []string

	for _, f := range []struct {
		flag  string
		value string
	}{
		{"package", h.Package},
		{"semantic-version", h.SemanticVersion},
		{"description", h.Description},
		{"byte-order", h.ByteOrder},
		{"sbe-namespace", h.SBE},
		{"enx-namespace", h.ENX},
		{"str-namespace", h.STR},
		{"ext-namespace", h.EXT},
	} {
		if f.value == "" {
			missing = append(missing, "--"+f.flag)
		}
	}

	return missing
}
