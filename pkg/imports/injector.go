// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package imports

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// DefaultHelper is the symbol the injector makes importable
	DefaultHelper = "dbDateToDisplay"

	// DefaultModule is the basename of the helper module
	DefaultModule = "dateUtils"

	// DefaultSignature marks content that still formats dates the old way
	DefaultSignature = "toLocaleDateString"
)

// 📝 Action describes what EnsureImport did to a file
type Action int

const (
	// ActionNone means the injector did not run
	ActionNone Action = iota
	// ActionAlreadyPresent means the helper name already appears in the content
	ActionAlreadyPresent
	// ActionNotNeeded means nothing in the content formats dates the old way
	ActionNotNeeded
	// ActionAugmented means the helper was appended to an existing import
	ActionAugmented
	// ActionAdded means a new import statement was inserted
	ActionAdded
)

// String returns a string representation of Action
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionAlreadyPresent:
		return "already present"
	case ActionNotNeeded:
		return "not needed"
	case ActionAugmented:
		return "augmented existing import"
	case ActionAdded:
		return "added new import"
	default:
		return "unknown"
	}
}

// Changed reports whether the action modified the content
func (a Action) Changed() bool {
	return a == ActionAugmented || a == ActionAdded
}

var (
	// importLine is a top-level import, recognized from column zero
	importLine = regexp.MustCompile(`^import[\s{*'"]`)
	// importEnd is the line that closes an import statement
	importEnd = regexp.MustCompile(`(^import\s*['"])|(\bfrom\s*['"])`)
	// fromClause is a `from '...'` left alone on the line after a closing brace
	fromClause = regexp.MustCompile(`^\s*from\s*['"]`)
)

// Options configures an Injector
type Options struct {
	Helper    string
	Module    string
	Signature string
	Paths     *PathTable
}

// 💉 Injector makes the helper symbol importable in a file
type Injector struct {
	helper    string
	module    string
	signature string
	paths     PathTable
}

// 🏭 New creates an Injector, falling back to the defaults for empty options
func New(opts Options) *Injector {
	inj := &Injector{
		helper:    opts.Helper,
		module:    opts.Module,
		signature: opts.Signature,
		paths:     DefaultPathTable(),
	}
	if inj.helper == "" {
		inj.helper = DefaultHelper
	}
	if inj.module == "" {
		inj.module = DefaultModule
	}
	if inj.signature == "" {
		inj.signature = DefaultSignature
	}
	if opts.Paths != nil {
		inj.paths = *opts.Paths
	}
	return inj
}

// 🎯 EnsureImport makes the helper importable from filePath's content.
//
// Any occurrence of the helper name counts as already imported, including one
// in a comment or string literal.
func (i *Injector) EnsureImport(ctx context.Context, content, filePath string) (string, Action) {
	logger := zerolog.Ctx(ctx).With().Str("file", filePath).Logger()

	if strings.Contains(content, i.helper) {
		logger.Debug().Str("helper", i.helper).Msg("helper already referenced, skipping import")
		return content, ActionAlreadyPresent
	}

	if !strings.Contains(content, i.signature) {
		logger.Debug().Str("signature", i.signature).Msg("no date formatting calls, skipping import")
		return content, ActionNotNeeded
	}

	if decl, ok := FindFrom(content, i.module); ok {
		augmented := decl.WithSymbol(i.helper)
		content = content[:decl.Start] + augmented.Render() + content[decl.End:]
		logger.Info().Str("path", decl.Path).Msgf("added %s to existing import in %s", i.helper, filepath.Base(filePath))
		return content, ActionAugmented
	}

	path := i.paths.Resolve(filePath)
	content = insertAfterImports(content, NewDeclaration(i.helper, path))
	logger.Info().Str("path", path).Msgf("added new import in %s", filepath.Base(filePath))
	return content, ActionAdded
}

// insertAfterImports puts stmt on its own line after the last top-level
// import statement, or on the first line when there is none. The file's line
// ending is kept.
func insertAfterImports(content, stmt string) string {
	eol := "\n"
	if strings.Contains(content, "\r\n") {
		eol = "\r\n"
	}

	lines := strings.Split(content, eol)
	idx := lastImportEnd(lines)

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:idx]...)
	out = append(out, stmt)
	out = append(out, lines[idx:]...)
	return strings.Join(out, eol)
}

// lastImportEnd returns the index of the line after the last import statement
func lastImportEnd(lines []string) int {
	idx := 0
	for n := 0; n < len(lines); n++ {
		if !importLine.MatchString(lines[n]) {
			continue
		}
		end := statementEnd(lines, n)
		idx = end + 1
		n = end
	}
	return idx
}

// statementEnd returns the line closing the import opened at line n. Only an
// open brace list carries a statement onto the following lines.
func statementEnd(lines []string, n int) int {
	if importEnd.MatchString(lines[n]) || !opensBrace(lines[n]) {
		return n
	}
	for j := n + 1; j < len(lines); j++ {
		line := lines[j]
		if strings.TrimSpace(line) == "" || importLine.MatchString(line) {
			// unterminated list, treat the opening line alone
			return n
		}
		if !strings.Contains(line, "}") {
			continue
		}
		if !importEnd.MatchString(line) && j+1 < len(lines) && fromClause.MatchString(lines[j+1]) {
			return j + 1
		}
		return j
	}
	return n
}

func opensBrace(line string) bool {
	return strings.Count(line, "{") > strings.Count(line, "}")
}
