package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/EduardoJoaoTurkiewicz/datefix/cmd/datefix/opts"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/log"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/operation"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show what fix would change without writing",
		Long: `Check runs the same pipeline as fix but leaves every file untouched.
The diff of each file that would change is printed after the summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "check").Logger().WithContext(cmd.Context())

			m, err := operation.New(operation.Options{
				Plan:   opts.Plan,
				Root:   opts.Root,
				Logger: log.FromContext(ctx),
				DryRun: true,
			})
			if err != nil {
				return errors.Errorf("creating migrator: %w", err)
			}

			summary, err := m.Run(ctx)
			if err != nil {
				return errors.Errorf("checking files: %w", err)
			}

			if quiet {
				return nil
			}
			logger := log.FromContext(ctx)
			for _, f := range summary.Files {
				if f.Diff == "" {
					continue
				}
				logger.LogNewline()
				fmt.Fprint(cmd.OutOrStdout(), f.Diff)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print diffs")

	return cmd
}
