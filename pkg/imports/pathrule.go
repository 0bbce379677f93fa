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
	"path/filepath"
	"strings"
)

// 🗺️ PathRule maps a directory segment to the relative helper module path
// used by files under it
type PathRule struct {
	Segment string
	Path    string
}

// PathTable resolves the helper module path for a file from its location.
// Rules are checked in order; the first segment found in the path wins.
type PathTable struct {
	Rules   []PathRule
	Default string
}

// DefaultPathTable returns the table for a helper module living in src/utils
func DefaultPathTable() PathTable {
	return PathTable{
		Rules: []PathRule{
			{Segment: "forms", Path: "../../utils/dateUtils"},
			{Segment: "reports", Path: "../../utils/dateUtils"},
		},
		Default: "../utils/dateUtils",
	}
}

// 🎯 Resolve returns the import path to use from filePath
func (t PathTable) Resolve(filePath string) string {
	p := filepath.ToSlash(filePath)
	for _, rule := range t.Rules {
		if strings.Contains(p, "/"+rule.Segment+"/") {
			return rule.Path
		}
	}
	return t.Default
}
