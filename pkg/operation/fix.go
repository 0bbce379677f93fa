package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/diff"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/imports"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/log"
	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/status"
)

// 🔄 ProcessFile migrates a single file. A missing file is a result, not an
// error; read and write failures are returned.
func (m *Migrator) ProcessFile(ctx context.Context, path string) (*FileResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()
	res := &FileResult{Path: path}

	exists, err := m.files.FileExists(ctx, path)
	if err != nil {
		return nil, errors.Errorf("checking %s: %w", path, err)
	}
	if !exists {
		res.Status = status.StatusMissing
		m.report(ctx, res)
		return res, nil
	}

	raw, err := m.files.ReadFile(ctx, path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	original := string(raw)

	sites := m.rewriter.Scan(original)
	if len(sites) == 0 {
		res.Status = status.StatusUnchanged
		m.report(ctx, res)
		return res, nil
	}
	for _, s := range sites {
		logger.Debug().Str("expr", s.Expr).Str("shape", s.Shape.String()).Int("offset", s.Start).Msg("call site")
	}

	// The import is ensured on the content as found: after substitution the
	// helper name is always present and would read as already imported.
	withImport, action := m.injector.EnsureImport(ctx, original, path)
	updated, count := m.rewriter.Rewrite(withImport)

	res.CallSites = sites
	res.Replacements = count
	res.Import = action
	if action == imports.ActionAdded {
		res.ImportPath = m.paths.Resolve(path)
	}
	res.Diff = diff.Unified(path, original, updated)

	if m.dryRun {
		res.Status = status.StatusPending
	} else {
		if err := m.files.WriteFile(ctx, path, []byte(updated)); err != nil {
			return nil, errors.Errorf("writing %s: %w", path, err)
		}
		res.Status = status.StatusModified
		res.Bytes = len(updated)
	}

	if action.Changed() {
		m.logger.LogImport(ctx, path, action.String(), m.importModule(path, action))
	}
	m.report(ctx, res)
	return res, nil
}

func (m *Migrator) importModule(path string, action imports.Action) string {
	if action == imports.ActionAdded {
		return m.paths.Resolve(path)
	}
	return m.plan.Helper.Module
}

func (m *Migrator) report(ctx context.Context, res *FileResult) {
	op := log.FileOperation{
		Path:         res.Path,
		Status:       res.Status,
		Replacements: res.Replacements,
		Bytes:        res.Bytes,
	}
	if res.Import.Changed() {
		op.Import = res.Import.String()
	}
	m.logger.LogFileOperation(ctx, op)
}
