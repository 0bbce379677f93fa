// Package diff renders line diffs between the content of a file before and
// after migration.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns the changed lines of a line-level diff from `from` to `to`,
// each prefixed with "-" or "+" and the 1-based line number it has in its
// own version. Equal content yields an empty slice.
func Lines(from, to string) []string {
	if from == to {
		return nil
	}

	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffMainRunes(src, dst, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var out []string
	oldLine, newLine := 1, 1
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				out = append(out, fmt.Sprintf("-%4d | %s", oldLine, line))
				oldLine++
			case diffmatchpatch.DiffInsert:
				out = append(out, fmt.Sprintf("+%4d | %s", newLine, line))
				newLine++
			default:
				oldLine++
				newLine++
			}
		}
	}
	return out
}

// Unified joins Lines under a header naming path
func Unified(path, from, to string) string {
	lines := Lines(from, to)
	if len(lines) == 0 {
		return ""
	}
	return "--- " + path + "\n+++ " + path + "\n" + strings.Join(lines, "\n") + "\n"
}

// splitLines splits a diff chunk into lines without their terminators
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
