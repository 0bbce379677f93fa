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

package config

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for plan parsers
type Parser interface {
	// 📝 Parse parses the plan from bytes
	Parse(ctx context.Context, data []byte) (*Plan, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// 🗺️ PathRule maps a directory segment to the helper import path used below it
type PathRule struct {
	Segment string `json:"segment" yaml:"segment" hcl:"segment"`
	Path    string `json:"path" yaml:"path" hcl:"path"`
}

// 🧰 Helper describes the function call sites are rewritten to and where it lives
type Helper struct {
	Name        string     `json:"name,omitempty" yaml:"name,omitempty" hcl:"name,optional"`
	Module      string     `json:"module,omitempty" yaml:"module,omitempty" hcl:"module,optional"`
	DefaultPath string     `json:"default_path,omitempty" yaml:"default_path,omitempty" hcl:"default_path,optional"`
	PathRules   []PathRule `json:"path_rules,omitempty" yaml:"path_rules,omitempty" hcl:"path_rule,block"`
}

// 📚 Plan is everything a migration run needs besides the file contents
type Plan struct {
	Locale string   `json:"locale,omitempty" yaml:"locale,omitempty" hcl:"locale,optional"`
	Helper *Helper  `json:"helper,omitempty" yaml:"helper,omitempty" hcl:"helper,block"`
	Files  []string `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,optional"`

	location string
}

// 🎯 Load loads a plan from a file. An empty path yields the built-in plan.
func Load(ctx context.Context, path string) (*Plan, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		logger.Debug().Msg("no plan file, using built-in plan")
		return Default(), nil
	}

	logger.Debug().Str("path", path).Msg("loading plan")

	// Read plan file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading plan file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse plan
	plan, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing plan: %w", err)
	}
	plan.location = path

	plan.SetDefaults()

	if err := plan.Validate(); err != nil {
		return nil, errors.Errorf("validating plan: %w", err)
	}

	return plan, nil
}

// 🔧 SetDefaults fills every unset field from the built-in plan
func (p *Plan) SetDefaults() {
	def := Default()

	if p.Locale == "" {
		p.Locale = def.Locale
	}
	if p.Helper == nil {
		p.Helper = &Helper{}
	}
	if p.Helper.Name == "" {
		p.Helper.Name = def.Helper.Name
	}
	if p.Helper.Module == "" {
		p.Helper.Module = def.Helper.Module
	}
	if p.Helper.DefaultPath == "" {
		p.Helper.DefaultPath = def.Helper.DefaultPath
	}
	if p.Helper.PathRules == nil {
		p.Helper.PathRules = def.Helper.PathRules
	}
	if len(p.Files) == 0 {
		p.Files = def.Files
	}
}

// 🔍 Validate checks if the plan is valid
func (p *Plan) Validate() error {
	if p.Locale == "" {
		return errors.Errorf("locale is required")
	}
	if p.Helper == nil {
		return errors.Errorf("helper is required")
	}
	if !identifierRe.MatchString(p.Helper.Name) {
		return errors.Errorf("helper.name %q is not a valid identifier", p.Helper.Name)
	}
	if p.Helper.Module == "" {
		return errors.Errorf("helper.module is required")
	}
	if !strings.HasSuffix(p.Helper.DefaultPath, p.Helper.Module) {
		return errors.Errorf("helper.default_path %q does not point at module %q", p.Helper.DefaultPath, p.Helper.Module)
	}
	for i, rule := range p.Helper.PathRules {
		if rule.Segment == "" || strings.Contains(rule.Segment, "/") {
			return errors.Errorf("helper.path_rules[%d]: segment must be a single directory name", i)
		}
		if !strings.HasSuffix(rule.Path, p.Helper.Module) {
			return errors.Errorf("helper.path_rules[%d]: path %q does not point at module %q", i, rule.Path, p.Helper.Module)
		}
	}
	if len(p.Files) == 0 {
		return errors.Errorf("files is required")
	}
	for i, f := range p.Files {
		if f == "" {
			return errors.Errorf("files[%d] is empty", i)
		}
		if filepath.IsAbs(f) || path.IsAbs(filepath.ToSlash(f)) {
			return errors.Errorf("files[%d]: %q must be relative", i, f)
		}
	}
	return nil
}

// Location returns the file the plan was loaded from, empty for the built-in plan
func (p *Plan) Location() string {
	return p.location
}

// 📝 String returns a string representation of the plan
func (p *Plan) String() string {
	name, module := "", ""
	if p.Helper != nil {
		name, module = p.Helper.Name, p.Helper.Module
	}
	return fmt.Sprintf("toLocaleDateString('%s') -> %s from %s (%d entries)", p.Locale, name, module, len(p.Files))
}
