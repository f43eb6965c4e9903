package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/jzelinskie/cobrautil/v2/cobrazerolog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sbe-schema-generator/internal/config"
	"sbe-schema-generator/internal/logging"
)

// DefaultConfigPath is the configuration file read when --config is not given.
const DefaultConfigPath = "sbegen.yaml"

// RootConfig is shared by every subcommand. Config is filled in by the
// persistent pre-run.
type RootConfig struct {
	ConfigPath string
	Dir        string

	Config *config.Config
}

func RegisterRootFlags(cmd *cobra.Command, rc *RootConfig) {
	cobrazerolog.New().RegisterFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", DefaultConfigPath, "path to the sbegen configuration file")
	cmd.PersistentFlags().StringVar(&rc.Dir, "dir", "", "directory of schema documents and artifacts, overrides the configuration file")
}

func NewRootCommand(programName string, rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   programName,
		Short: "Maintain SBE schema documents and generate their XML",
		Long: fmt.Sprintf(`Maintains a JSON schema document per SBE schema and compiles it into
an SBE XML message schema.

A document is created by %s and filled by %s from a YAML manifest.
%s rebuilds the XML from an existing document.`,
			color.YellowString("init"), color.YellowString("apply"), color.YellowString("generate")),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrazerolog.New(
				cobrazerolog.WithTarget(func(logger zerolog.Logger) {
					logging.SetGlobalLogger(logger)
				}),
			).RunE(),
			rc.loadConfig,
		),
	}
}

func (rc *RootConfig) loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFile(rc.ConfigPath)
	if err != nil {
		return err
	}

	if rc.Dir != "" {
		cfg.Dir = rc.Dir
	}

	rc.Config = cfg

	logging.Debug().
		Str("config", rc.ConfigPath).
		Str("dir", cfg.Dir).
		Msg("loaded configuration")

	return nil
}

// NewProgram builds the full command tree.
func NewProgram(programName string) *cobra.Command {
	rc := &RootConfig{}

	root := NewRootCommand(programName, rc)
	RegisterRootFlags(root, rc)

	initCmd := NewInitCommand(rc)
	RegisterInitFlags(initCmd)
	root.AddCommand(initCmd)

	applyCmd := NewApplyCommand(rc)
	RegisterApplyFlags(applyCmd)
	root.AddCommand(applyCmd)

	root.AddCommand(NewGenerateCommand(rc))
	root.AddCommand(NewCheckCommand(rc))

	showCmd := NewShowCommand(rc)
	RegisterShowFlags(showCmd)
	root.AddCommand(showCmd)

	exportCmd := NewExportCommand(rc)
	RegisterExportFlags(exportCmd)
	root.AddCommand(exportCmd)

	return root
}
