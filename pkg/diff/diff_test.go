package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{
			name: "equal",
			from: "a\nb\n",
			to:   "a\nb\n",
			want: nil,
		},
		{
			name: "inserted_line",
			from: "import a;\nconst x = 1;\n",
			to:   "import a;\nimport b;\nconst x = 1;\n",
			want: []string{"+   2 | import b;"},
		},
		{
			name: "no_trailing_newline",
			from: "a",
			to:   "b",
			want: []string{"-   1 | a", "+   1 | b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.from, tt.to))
		})
	}
}

func TestLines_ReplacedLine(t *testing.T) {
	got := Lines("a\nnew Date(d).toLocaleDateString('pt-BR')\nc\n", "a\ndbDateToDisplay(d)\nc\n")

	assert.Len(t, got, 2)
	assert.Contains(t, got, "-   2 | new Date(d).toLocaleDateString('pt-BR')")
	assert.Contains(t, got, "+   2 | dbDateToDisplay(d)")
}

func TestUnified(t *testing.T) {
	assert.Empty(t, Unified("x.tsx", "same", "same"))
	assert.Equal(t, "--- x.tsx\n+++ x.tsx\n-   1 | a\n+   1 | b\n", Unified("x.tsx", "a", "b"))
}
