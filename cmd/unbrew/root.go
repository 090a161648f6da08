package unbrew

import (
	"io"

	"github.com/arthur-debert/unbrew/internal/version"
	"github.com/arthur-debert/unbrew/pkg/brew"
	"github.com/arthur-debert/unbrew/pkg/config"
	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/arthur-debert/unbrew/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// environment supplies the collaborators commands are built from.
type environment struct {
	loadConfig func() (*config.Config, error)
	newRunner  func(cfg *config.Config) brew.Runner
}

func defaultEnvironment() environment {
	return environment{
		loadConfig: func() (*config.Config, error) {
			return config.Load(config.Options{})
		},
		newRunner: func(cfg *config.Config) brew.Runner {
			return brew.NewExecRunner(cfg.Brew.Env)
		},
	}
}

// app holds per-invocation state shared by the commands.
type app struct {
	env       environment
	verbosity int
	cfg       *config.Config
}

func (a *app) ensureConfig() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := a.env.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) client() *brew.Client {
	return brew.NewClient(a.env.newRunner(a.cfg), a.cfg.Brew.Command)
}

func (a *app) printer(w io.Writer) (*ui.Printer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, MsgErrOutputFormat, a.cfg.Output.Format)
	}
	return ui.NewPrinter(w, format), nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultEnvironment())
}

func newRootCmd(env environment) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{env: env}

	rootCmd := &cobra.Command{
		Use:     "unbrew",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureConfig(); err != nil {
				return err
			}

			logging.SetupLogger(a.verbosity, a.cfg.Log.File)
			log.Debug().Str("command", cmd.Name()).Str("brew", a.cfg.Brew.Command).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand; the caller prints usage for invalid input.
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "Misc:",
	})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetCompletionCommandGroupID("misc")

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newRmDepCmd(a))

	return rootCmd
}

// exactArgs is cobra.ExactArgs reporting ErrInvalidInput.
func exactArgs(n int, format string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.Newf(errors.ErrInvalidInput, format, len(args))
		}
		return nil
	}
}
