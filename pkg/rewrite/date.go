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

package rewrite

import (
	"regexp"
	"strings"
)

const (
	// DefaultLocale is the locale literal targeted by the migration
	DefaultLocale = "pt-BR"

	// DefaultHelper is the function call sites are rewritten to
	DefaultHelper = "dbDateToDisplay"

	// identifier is the character class allowed in a date expression segment
	identifier = `[A-Za-z0-9_]+`
)

// 📐 shapes lists the accepted expression grammars. The capture group of each
// entry is its submatch index in the combined pattern, in order.
var shapes = []struct {
	shape   Shape
	pattern string
}{
	{shape: ShapeProperty, pattern: identifier + `\.` + identifier},
	{shape: ShapeIdentifier, pattern: identifier},
}

// Options configures a DateCallRewriter
type Options struct {
	// Locale is the literal passed to toLocaleDateString, without quotes
	Locale string

	// Helper is the function name call sites are rewritten to
	Helper string
}

// 📅 DateCallRewriter rewrites `new Date(EXPR).toLocaleDateString(LOCALE)`
// into `HELPER(EXPR)`
type DateCallRewriter struct {
	helper  string
	pattern *regexp.Regexp
}

var _ Rewriter = (*DateCallRewriter)(nil)

// 🏭 New creates a DateCallRewriter, falling back to the defaults for empty options
func New(opts Options) *DateCallRewriter {
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	if opts.Helper == "" {
		opts.Helper = DefaultHelper
	}

	alternatives := make([]string, 0, len(shapes))
	for _, s := range shapes {
		alternatives = append(alternatives, "("+s.pattern+")")
	}

	// The closing paren right after the expression is what rejects a.b.c
	expr := `new Date\((?:` + strings.Join(alternatives, "|") + `)\)` +
		`\.toLocaleDateString\(['"]` + regexp.QuoteMeta(opts.Locale) + `['"]\)`

	return &DateCallRewriter{
		helper:  opts.Helper,
		pattern: regexp.MustCompile(expr),
	}
}

// Helper returns the function name call sites are rewritten to
func (r *DateCallRewriter) Helper() string {
	return r.helper
}

// 🔍 Scan implements Rewriter.Scan
func (r *DateCallRewriter) Scan(content string) []CallSite {
	matches := r.pattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	sites := make([]CallSite, 0, len(matches))
	for _, m := range matches {
		site := CallSite{
			Start: m[0],
			End:   m[1],
			Text:  content[m[0]:m[1]],
		}
		for i, s := range shapes {
			lo, hi := m[2+2*i], m[3+2*i]
			if lo < 0 {
				continue
			}
			site.Expr = content[lo:hi]
			site.Shape = s.shape
			break
		}
		sites = append(sites, site)
	}
	return sites
}

// 🔄 Apply implements Rewriter.Apply
func (r *DateCallRewriter) Apply(content string) *Result {
	result := &Result{
		OriginalContent: content,
		ModifiedContent: content,
	}

	sites := r.Scan(content)
	if len(sites) == 0 {
		return result
	}

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, site := range sites {
		b.WriteString(content[last:site.Start])
		b.WriteString(r.Call(site.Expr))
		last = site.End
	}
	b.WriteString(content[last:])

	result.ModifiedContent = b.String()
	result.CallSites = sites
	result.ReplacementCount = len(sites)
	result.WasModified = true
	return result
}

// Rewrite implements Rewriter.Rewrite
func (r *DateCallRewriter) Rewrite(content string) (string, int) {
	result := r.Apply(content)
	return result.ModifiedContent, result.ReplacementCount
}

// Call renders the helper call for expr
func (r *DateCallRewriter) Call(expr string) string {
	return r.helper + "(" + expr + ")"
}
