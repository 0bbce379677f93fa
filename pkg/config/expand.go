package config

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// IsPattern reports whether a files entry is a glob rather than a literal path
func IsPattern(entry string) bool {
	return strings.ContainsAny(entry, "*?[{")
}

// 📂 Expand resolves the files list against root, in plan order. Literal
// entries are kept as written even if they do not exist, so the caller can
// report them; glob entries are replaced by their sorted matches. A path is
// listed once, at its first position.
func (p *Plan) Expand(ctx context.Context, root string) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	fsys := os.DirFS(root)

	seen := make(map[string]bool, len(p.Files))
	out := make([]string, 0, len(p.Files))
	add := func(f string) {
		if seen[f] {
			return
		}
		seen[f] = true
		out = append(out, f)
	}

	for _, entry := range p.Files {
		if !IsPattern(entry) {
			add(entry)
			continue
		}

		if !doublestar.ValidatePattern(entry) {
			return nil, errors.Errorf("invalid glob pattern %q", entry)
		}

		matches, err := doublestar.Glob(fsys, entry, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("expanding %q: %w", entry, err)
		}
		sort.Strings(matches)

		logger.Debug().Str("pattern", entry).Int("matches", len(matches)).Msg("expanded glob entry")
		for _, m := range matches {
			add(m)
		}
	}

	return out, nil
}
