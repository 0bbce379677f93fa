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
	"regexp"
	"strings"
)

// namedImport matches `import { a, b } from 'path'`. The symbol list may span lines.
var namedImport = regexp.MustCompile(`import\s+\{([^}]+)\}\s+from\s+(['"])([^'"]*)['"]`)

// 📦 Declaration is a named import statement found in a file
type Declaration struct {
	// Symbols are the imported names in the order written, without duplicates
	Symbols []string

	// Path is the module path, without quotes
	Path string

	// Quote is the quote character used around Path
	Quote string

	// Text is the statement as it appears in the file
	Text string

	// Start and End are byte offsets of Text in the file
	Start int
	End   int

	// list is the raw text between the braces, offsets relative to Text
	list      string
	listStart int
	listEnd   int
}

// 🔍 ParseDeclarations returns every named import in content, in file order
func ParseDeclarations(content string) []Declaration {
	matches := namedImport.FindAllStringSubmatchIndex(content, -1)
	decls := make([]Declaration, 0, len(matches))
	for _, m := range matches {
		decls = append(decls, Declaration{
			Symbols:   parseSymbols(content[m[2]:m[3]]),
			Path:      content[m[6]:m[7]],
			Quote:     content[m[4]:m[5]],
			Text:      content[m[0]:m[1]],
			Start:     m[0],
			End:       m[1],
			list:      content[m[2]:m[3]],
			listStart: m[2] - m[0],
			listEnd:   m[3] - m[0],
		})
	}
	return decls
}

// FindFrom returns the first declaration whose module path ends with module
func FindFrom(content, module string) (Declaration, bool) {
	for _, d := range ParseDeclarations(content) {
		if strings.HasSuffix(d.Path, module) {
			return d, true
		}
	}
	return Declaration{}, false
}

// HasSymbol reports whether name is imported by the declaration, by local name
func (d Declaration) HasSymbol(name string) bool {
	for _, s := range d.Symbols {
		if localName(s) == name {
			return true
		}
	}
	return false
}

// ➕ WithSymbol returns a copy of d that also imports name. The existing list
// keeps its layout; name goes after the last symbol.
func (d Declaration) WithSymbol(name string) Declaration {
	if d.HasSymbol(name) {
		return d
	}

	trimmed := strings.TrimRight(d.list, " \t\r\n")
	tail := d.list[len(trimmed):]

	var list string
	if trimmed == "" {
		list = " " + name + " "
	} else if strings.HasSuffix(trimmed, ",") {
		list = trimmed + " " + name + "," + tail
	} else {
		list = trimmed + ", " + name + tail
	}

	out := d
	out.Symbols = append(append([]string(nil), d.Symbols...), name)
	out.Text = d.Text[:d.listStart] + list + d.Text[d.listEnd:]
	out.list = list
	out.listEnd = d.listStart + len(list)
	out.End = d.Start + len(out.Text)
	return out
}

// Render returns the statement text
func (d Declaration) Render() string {
	return d.Text
}

// NewDeclaration builds a single-symbol statement terminated with a semicolon
func NewDeclaration(symbol, path string) string {
	return "import { " + symbol + " } from '" + path + "';"
}

func parseSymbols(list string) []string {
	seen := map[string]bool{}
	var out []string
	for _, part := range strings.Split(list, ",") {
		s := strings.Join(strings.Fields(part), " ")
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// localName returns the binding a specifier introduces: `a as b` binds b
func localName(specifier string) string {
	fields := strings.Fields(specifier)
	if len(fields) == 3 && fields[1] == "as" {
		return fields[2]
	}
	if len(fields) == 2 && fields[0] == "type" {
		return fields[1]
	}
	return specifier
}
