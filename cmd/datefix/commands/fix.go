package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/EduardoJoaoTurkiewicz/datefix/cmd/datefix/opts"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/log"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/operation"
)

// NewFixCmd creates a new fix command
func NewFixCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Rewrite date displays in place",
		Long: `Fix walks the plan's files in order. For every file it will:
1. Skip the file if it does not exist
2. Replace each new Date(x).toLocaleDateString('pt-BR') with dbDateToDisplay(x)
3. Add or extend the dateUtils import when something was replaced
4. Overwrite the file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "fix").Logger().WithContext(cmd.Context())

			m, err := operation.New(operation.Options{
				Plan:   opts.Plan,
				Root:   opts.Root,
				Logger: log.FromContext(ctx),
			})
			if err != nil {
				return errors.Errorf("creating migrator: %w", err)
			}

			if _, err := m.Run(ctx); err != nil {
				return errors.Errorf("fixing files: %w", err)
			}

			return nil
		},
	}

	return cmd
}
