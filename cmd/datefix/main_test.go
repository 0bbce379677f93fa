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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/log"
)

const sourceFile = "import React from 'react';\n\nconst d = new Date(row.date).toLocaleDateString('pt-BR');\n"

func setupProject(t *testing.T) (string, string) {
	color.NoColor = true
	pterm.DisableStyling()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableStyling()
	})

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "components"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "components", "Debts.tsx"), []byte(sourceFile), 0644))

	configPath := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("files:\n  - src/components/Debts.tsx\n  - src/components/Gone.tsx\n"), 0644))

	return root, configPath
}

func execute(t *testing.T, args ...string) (string, error) {
	out := &bytes.Buffer{}
	zlog := zerolog.New(zerolog.NewTestWriter(t))
	ctx := log.NewContext(zlog.WithContext(context.Background()), log.New(out, zlog))

	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      func(root, config string) []string
		wantFile  string
		wantOut   []string
		wantError string
	}{
		{
			name:     "fix_rewrites_files",
			args:     func(root, config string) []string { return []string{"fix", "-r", root, "-c", config} },
			wantFile: "import React from 'react';\nimport { dbDateToDisplay } from '../utils/dateUtils';\n\nconst d = dbDateToDisplay(row.date);\n",
			wantOut:  []string{"fixed 1 date display(s)", "file not found", "1 file(s) not found", "Complete! Fixed 1 files"},
		},
		{
			name:     "root_defaults_to_fix",
			args:     func(root, config string) []string { return []string{"--root", root, "--config", config, "--debug"} },
			wantFile: "import React from 'react';\nimport { dbDateToDisplay } from '../utils/dateUtils';\n\nconst d = dbDateToDisplay(row.date);\n",
			wantOut:  []string{"Complete! Fixed 1 files"},
		},
		{
			name:     "check_prints_diff",
			args:     func(root, config string) []string { return []string{"check", "-r", root, "-c", config} },
			wantFile: sourceFile,
			wantOut: []string{
				"would fix 1 date display(s)",
				"--- src/components/Debts.tsx",
				"+   4 | const d = dbDateToDisplay(row.date);",
			},
		},
		{
			name:      "bad_config",
			args:      func(root, config string) []string { return []string{"fix", "-r", root, "-c", filepath.Join(root, "missing.yaml")} },
			wantFile:  sourceFile,
			wantError: "loading config",
		},
		{
			name:      "extra_args_rejected",
			args:      func(root, config string) []string { return []string{"fix", "-r", root, "-c", config, "src/x.tsx"} },
			wantFile:  sourceFile,
			wantError: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, config := setupProject(t)

			out, err := execute(t, tt.args(root, config)...)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
			} else {
				require.NoError(t, err)
			}

			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}

			got, err := os.ReadFile(filepath.Join(root, "src", "components", "Debts.tsx"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFile, string(got))
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "datefix version info")
	assert.Contains(t, out, "Go:")
}
