// Package cli builds the propconv cobra command tree.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/propconv/internal/commands"
	"github.com/arthur-debert/propconv/internal/version"
	"github.com/arthur-debert/propconv/pkg/convert"
	"github.com/arthur-debert/propconv/pkg/core"
	"github.com/arthur-debert/propconv/pkg/errors"
	"github.com/arthur-debert/propconv/pkg/logging"
)

// app carries state shared by the commands of one invocation.
type app struct {
	verbosity  int
	configPath string

	// registryOptions are passed through to core.Initialize.
	registryOptions []convert.Option

	rt *core.Runtime
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "propconv",
		Short:   commands.MsgRootShort,
		Long:    commands.MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipInit"] == "true" {
				logging.SetupLogger(a.verbosity)
				return nil
			}
			return a.initialize(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", commands.MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", commands.MsgFlagConfig)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newHandlersCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))

	return rootCmd
}

func (a *app) initialize(cmd *cobra.Command) error {
	// Loggers are captured when the registry is built, so set up output first.
	logging.SetupLogger(a.verbosity)

	opts := core.Options{
		ConfigPath:      a.configPath,
		RegistryOptions: a.registryOptions,
	}
	if cmd.Flags().Changed("verbose") {
		opts.Overrides = map[string]any{"logging.verbosity": a.verbosity}
	}

	rt, err := core.Initialize(opts)
	if err != nil {
		return errors.Wrap(err, errors.GetErrorCode(err), commands.MsgErrInitialize)
	}
	a.rt = rt

	zerolog.SetGlobalLevel(logging.LevelFor(rt.Config.Logging.Verbosity))
	logger := logging.WithFields(map[string]interface{}{
		"command":  cmd.Name(),
		"external": rt.Config.Registry.External,
	})
	logger.Debug().Msg("Command started")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       commands.MsgVersionShort,
		Long:        commands.MsgVersionLong,
		Annotations: map[string]string{"skipInit": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(version.Info()))
			return err
		},
	}
}
