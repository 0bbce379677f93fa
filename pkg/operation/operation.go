package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/config"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/imports"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/log"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/rewrite"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/status"
)

// 🔧 Options contains configuration for the migrator
type Options struct {
	// Plan is the migration plan
	Plan *config.Plan
	// Root is the directory plan paths are relative to
	Root string
	// Files reads and writes plan paths, defaults to a status.Manager on Root
	Files status.FileManager
	// Logger receives the user facing progress lines
	Logger *log.Logger
	// DryRun computes every change without writing
	DryRun bool
}

// 📄 FileResult is the outcome of processing one file
type FileResult struct {
	Path         string
	Status       status.FileStatus
	Replacements int
	CallSites    []rewrite.CallSite
	Import       imports.Action
	ImportPath   string
	Diff         string
	Bytes        int
}

// 📊 Summary is the outcome of a whole run
type Summary struct {
	Files        []FileResult
	Modified     int
	Replacements int
	BytesWritten int
}

// 🎮 Migrator rewrites call sites and ensures the helper import, one file at a time
type Migrator struct {
	plan     *config.Plan
	root     string
	files    status.FileManager
	logger   *log.Logger
	rewriter rewrite.Rewriter
	injector *imports.Injector
	paths    imports.PathTable
	dryRun   bool
}

// 🏭 New creates a new migrator with the given options
func New(opts Options) (*Migrator, error) {
	if opts.Plan == nil {
		return nil, errors.Errorf("plan is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if err := opts.Plan.Validate(); err != nil {
		return nil, errors.Errorf("validating plan: %w", err)
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Files == nil {
		opts.Files = status.New(opts.Root)
	}

	helper := opts.Plan.Helper
	paths := imports.PathTable{Default: helper.DefaultPath}
	for _, r := range helper.PathRules {
		paths.Rules = append(paths.Rules, imports.PathRule{Segment: r.Segment, Path: r.Path})
	}

	return &Migrator{
		plan:   opts.Plan,
		root:   opts.Root,
		files:  opts.Files,
		logger: opts.Logger,
		rewriter: rewrite.New(rewrite.Options{
			Locale: opts.Plan.Locale,
			Helper: helper.Name,
		}),
		injector: imports.New(imports.Options{
			Helper: helper.Name,
			Module: helper.Module,
			Paths:  &paths,
		}),
		paths:  paths,
		dryRun: opts.DryRun,
	}, nil
}

// 🏃 Run processes every file of the plan in order and prints the summary
func (m *Migrator) Run(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx)

	files, err := m.plan.Expand(ctx, m.root)
	if err != nil {
		return nil, errors.Errorf("expanding files: %w", err)
	}

	m.logger.Reset()
	if m.dryRun {
		m.logger.Header("checking date displays")
	} else {
		m.logger.Header("fixing date displays")
	}
	logger.Debug().Str("plan", m.plan.String()).Int("files", len(files)).Bool("dry_run", m.dryRun).Msg("starting run")

	summary := &Summary{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, errors.Errorf("run cancelled: %w", err)
		}

		res, err := m.ProcessFile(ctx, path)
		if err != nil {
			return summary, errors.Errorf("processing file %s: %w", path, err)
		}

		summary.Files = append(summary.Files, *res)
		if res.Status == status.StatusModified || res.Status == status.StatusPending {
			summary.Modified++
			summary.Replacements += res.Replacements
			summary.BytesWritten += res.Bytes
		}
	}

	if err := m.logger.Summary(m.dryRun); err != nil {
		return summary, errors.Errorf("rendering summary: %w", err)
	}

	return summary, nil
}
