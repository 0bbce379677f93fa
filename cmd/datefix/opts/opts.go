package opts

import (
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/config"
)

// RootOpts contains shared options used by all commands.
// The console logger travels in the context, see log.FromContext.
type RootOpts struct {
	Plan *config.Plan
	Root string
}
