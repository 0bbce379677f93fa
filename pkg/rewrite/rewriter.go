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

// 🧩 Shape identifies which expression grammar a call site matched
type Shape int

const (
	// ShapeIdentifier is a bare identifier such as `date`
	ShapeIdentifier Shape = iota
	// ShapeProperty is a one-level property access such as `record.createdAt`
	ShapeProperty
)

// String returns a string representation of Shape
func (s Shape) String() string {
	switch s {
	case ShapeIdentifier:
		return "identifier"
	case ShapeProperty:
		return "property"
	default:
		return "unknown"
	}
}

// 📍 CallSite is a single occurrence of the date formatting call
type CallSite struct {
	// Expr is the captured date expression passed to `new Date(...)`
	Expr string

	// Shape is the grammar the expression matched
	Shape Shape

	// Start and End are byte offsets of the full matched span
	Start int
	End   int

	// Text is the matched span, verbatim
	Text string
}

// Result contains the outcome of a rewrite pass
type Result struct {
	// OriginalContent is the content before replacements
	OriginalContent string

	// ModifiedContent is the content after replacements
	ModifiedContent string

	// CallSites are the replaced occurrences, left to right
	CallSites []CallSite

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// WasModified indicates if any replacements were made
	WasModified bool
}

// 🔌 Rewriter defines the interface for call site rewriting
type Rewriter interface {
	// Apply rewrites every call site in content in a single left-to-right pass
	Apply(content string) *Result

	// Rewrite is Apply reduced to the new content and the replacement count
	Rewrite(content string) (string, int)

	// Scan returns the call sites Apply would replace, without replacing them
	Scan(content string) []CallSite
}
