package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateCallRewriter_Rewrite(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		want      string
		wantCount int
	}{
		{
			name:      "bare_identifier",
			content:   "const s = new Date(d).toLocaleDateString('pt-BR');",
			want:      "const s = dbDateToDisplay(d);",
			wantCount: 1,
		},
		{
			name:      "property_access",
			content:   "const x = new Date(record.createdAt).toLocaleDateString('pt-BR');",
			want:      "const x = dbDateToDisplay(record.createdAt);",
			wantCount: 1,
		},
		{
			name:      "double_quoted_locale",
			content:   `<td>{new Date(sale.date).toLocaleDateString("pt-BR")}</td>`,
			want:      `<td>{dbDateToDisplay(sale.date)}</td>`,
			wantCount: 1,
		},
		{
			name: "multiple_sites_left_to_right",
			content: "a(new Date(x).toLocaleDateString('pt-BR'));\n" +
				"b(new Date(y.due_date).toLocaleDateString('pt-BR'), new Date(z2).toLocaleDateString('pt-BR'));\n",
			want: "a(dbDateToDisplay(x));\n" +
				"b(dbDateToDisplay(y.due_date), dbDateToDisplay(z2));\n",
			wantCount: 3,
		},
		{
			name:      "deeper_nesting_untouched",
			content:   "new Date(a.b.c).toLocaleDateString('pt-BR')",
			want:      "new Date(a.b.c).toLocaleDateString('pt-BR')",
			wantCount: 0,
		},
		{
			name:      "disallowed_characters_untouched",
			content:   "new Date(item?.date).toLocaleDateString('pt-BR') new Date(x + 1).toLocaleDateString('pt-BR') new Date(a[0]).toLocaleDateString('pt-BR')",
			want:      "new Date(item?.date).toLocaleDateString('pt-BR') new Date(x + 1).toLocaleDateString('pt-BR') new Date(a[0]).toLocaleDateString('pt-BR')",
			wantCount: 0,
		},
		{
			name:      "empty_call_untouched",
			content:   "new Date().toLocaleDateString('pt-BR')",
			want:      "new Date().toLocaleDateString('pt-BR')",
			wantCount: 0,
		},
		{
			name:      "other_locale_untouched",
			content:   "new Date(d).toLocaleDateString('en-US')",
			want:      "new Date(d).toLocaleDateString('en-US')",
			wantCount: 0,
		},
		{
			name:      "no_locale_untouched",
			content:   "new Date(d).toLocaleDateString()",
			want:      "new Date(d).toLocaleDateString()",
			wantCount: 0,
		},
		{
			name:      "empty_content",
			content:   "",
			want:      "",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Options{})
			got, count := r.Rewrite(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestDateCallRewriter_Idempotent(t *testing.T) {
	contents := []string{
		"",
		"nothing to see here",
		"const x = new Date(record.createdAt).toLocaleDateString('pt-BR');",
		"new Date(a).toLocaleDateString(\"pt-BR\") + new Date(a.b.c).toLocaleDateString('pt-BR')",
		"dbDateToDisplay(already)",
	}

	r := New(Options{})
	for _, c := range contents {
		once, _ := r.Rewrite(c)
		twice, count := r.Rewrite(once)
		assert.Equal(t, 0, count, "second pass over %q", c)
		assert.Equal(t, once, twice)
	}
}

func TestDateCallRewriter_Scan(t *testing.T) {
	content := "x = new Date(d).toLocaleDateString('pt-BR'); y = new Date(p.q).toLocaleDateString(\"pt-BR\")"

	sites := New(Options{}).Scan(content)
	require.Len(t, sites, 2)

	assert.Equal(t, "d", sites[0].Expr)
	assert.Equal(t, ShapeIdentifier, sites[0].Shape)
	assert.Equal(t, "new Date(d).toLocaleDateString('pt-BR')", sites[0].Text)
	assert.Equal(t, sites[0].Text, content[sites[0].Start:sites[0].End])

	assert.Equal(t, "p.q", sites[1].Expr)
	assert.Equal(t, ShapeProperty, sites[1].Shape)
	assert.Equal(t, "property", sites[1].Shape.String())
	assert.Equal(t, sites[1].Text, content[sites[1].Start:sites[1].End])
}

func TestDateCallRewriter_Options(t *testing.T) {
	r := New(Options{Locale: "en-US", Helper: "formatDate"})
	assert.Equal(t, "formatDate", r.Helper())

	result := r.Apply("new Date(d).toLocaleDateString('en-US') new Date(d).toLocaleDateString('pt-BR')")
	assert.Equal(t, "formatDate(d) new Date(d).toLocaleDateString('pt-BR')", result.ModifiedContent)
	assert.Equal(t, 1, result.ReplacementCount)
	assert.True(t, result.WasModified)
}

func TestDateCallRewriter_LocaleIsLiteral(t *testing.T) {
	// a regexp metacharacter in the locale must not widen the match
	r := New(Options{Locale: "pt.BR"})
	_, count := r.Rewrite("new Date(d).toLocaleDateString('ptXBR')")
	assert.Equal(t, 0, count)
}

func TestDateCallRewriter_Apply_NoMatch(t *testing.T) {
	result := New(Options{}).Apply("const a = 1;")
	assert.Equal(t, "const a = 1;", result.OriginalContent)
	assert.Equal(t, "const a = 1;", result.ModifiedContent)
	assert.Empty(t, result.CallSites)
	assert.Zero(t, result.ReplacementCount)
	assert.False(t, result.WasModified)
}
