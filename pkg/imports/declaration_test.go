package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclarations(t *testing.T) {
	content := "import React, { useState } from 'react';\n" +
		"import { a as b, type C, a as b } from \"./types\";\n" +
		"import {\n  formatDate,\n  parseDate\n} from '../../utils/dateUtils';\n"

	decls := ParseDeclarations(content)
	require.Len(t, decls, 2)

	assert.Equal(t, "./types", decls[0].Path)
	assert.Equal(t, `"`, decls[0].Quote)
	assert.Equal(t, []string{"a as b", "type C"}, decls[0].Symbols)
	assert.True(t, decls[0].HasSymbol("b"))
	assert.True(t, decls[0].HasSymbol("C"))
	assert.False(t, decls[0].HasSymbol("a"))

	assert.Equal(t, "../../utils/dateUtils", decls[1].Path)
	assert.Equal(t, []string{"formatDate", "parseDate"}, decls[1].Symbols)
	assert.Equal(t, decls[1].Text, content[decls[1].Start:decls[1].End])
}

func TestFindFrom(t *testing.T) {
	content := "import { x } from './other';\nimport { y } from '../utils/dateUtils';\n"

	d, ok := FindFrom(content, "dateUtils")
	require.True(t, ok)
	assert.Equal(t, "../utils/dateUtils", d.Path)

	_, ok = FindFrom(content, "numberUtils")
	assert.False(t, ok)
}

func TestDeclaration_WithSymbol(t *testing.T) {
	tests := []struct {
		name    string
		content string
		symbol  string
		want    string
	}{
		{
			name:    "single_line",
			content: "import { a, b } from 'x/dateUtils'",
			symbol:  "c",
			want:    "import { a, b, c } from 'x/dateUtils'",
		},
		{
			name:    "no_spaces",
			content: "import {a} from 'x/dateUtils'",
			symbol:  "c",
			want:    "import {a, c} from 'x/dateUtils'",
		},
		{
			name:    "already_imported",
			content: "import { a, c } from 'x/dateUtils'",
			symbol:  "c",
			want:    "import { a, c } from 'x/dateUtils'",
		},
		{
			name:    "multiline_without_trailing_comma",
			content: "import {\n  a,\n  b\n} from 'x/dateUtils'",
			symbol:  "c",
			want:    "import {\n  a,\n  b, c\n} from 'x/dateUtils'",
		},
		{
			name:    "empty_list",
			content: "import {  } from 'x/dateUtils'",
			symbol:  "c",
			want:    "import { c } from 'x/dateUtils'",
		},
		{
			name:    "empty_multiline_list",
			content: "import {\n} from 'x/dateUtils'",
			symbol:  "c",
			want:    "import { c } from 'x/dateUtils'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls := ParseDeclarations(tt.content)
			require.Len(t, decls, 1)

			got := decls[0].WithSymbol(tt.symbol)
			assert.Equal(t, tt.want, got.Render())
			assert.True(t, got.HasSymbol(tt.symbol))
			assert.Equal(t, len(got.Text), got.End-got.Start)
		})
	}
}

func TestNewDeclaration(t *testing.T) {
	assert.Equal(t, "import { dbDateToDisplay } from '../utils/dateUtils';", NewDeclaration("dbDateToDisplay", "../utils/dateUtils"))
}

func TestPathTable_Resolve(t *testing.T) {
	table := DefaultPathTable()

	tests := []struct {
		path string
		want string
	}{
		{path: "src/components/forms/SaleForm.tsx", want: "../../utils/dateUtils"},
		{path: "src/components/reports/PayablesReport.tsx", want: "../../utils/dateUtils"},
		{path: "src/components/Dashboard.tsx", want: "../utils/dateUtils"},
		{path: "src/components/reportsArchive.tsx", want: "../utils/dateUtils"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Resolve(tt.path))
		})
	}
}
