package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/EduardoJoaoTurkiewicz/datefix/cmd/datefix/commands"
	"github.com/EduardoJoaoTurkiewicz/datefix/cmd/datefix/opts"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/config"
)

// rootFlags holds the flags shared by every command
type rootFlags struct {
	configFile string
	root       string
	debug      bool
}

// newRootCmd builds the command tree. The console logger is taken from the
// execution context.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	fix := commands.NewFixCmd(rootOpts)

	cmd := &cobra.Command{
		Use:   "datefix",
		Short: "Replace locale date formatting with the dbDateToDisplay helper",
		Long: `datefix rewrites new Date(x).toLocaleDateString('pt-BR') call sites into
dbDateToDisplay(x) across a fixed list of source files, and makes sure each
changed file imports the helper from its dateUtils module.

Running datefix without a subcommand is the same as "datefix fix".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd, flags.debug)
			cmd.SetContext(ctx)

			o, err := newRootOpts(ctx, flags)
			if err != nil {
				return err
			}
			*rootOpts = *o
			return nil
		},
		RunE: fix.RunE,
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		fix,
		commands.NewCheckCmd(rootOpts),
		newVersionCmd(),
	)

	return cmd
}

// newRootOpts loads the plan
func newRootOpts(ctx context.Context, flags *rootFlags) (*opts.RootOpts, error) {
	plan, err := config.Load(ctx, flags.configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	return &opts.RootOpts{
		Plan: plan,
		Root: flags.root,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "plan file path (.hcl, .yaml, .yml or .json), built-in plan when empty")
	cmd.PersistentFlags().StringVarP(&flags.root, "root", "r", ".", "directory the plan paths are relative to")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging sets the log level on the context logger
func setupLogging(cmd *cobra.Command, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.Ctx(cmd.Context()).Level(level).WithContext(cmd.Context())
}
