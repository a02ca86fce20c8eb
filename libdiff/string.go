// Package libdiff renders differences between encoded values.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text renders the differences from one string to another, or returns ""
// if they are the same. With color, changes are highlighted by terminal
// escapes. Otherwise deletions are written between [- and -] and insertions
// between {+ and +}.
func Text(from, to string, color bool) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if color {
		return diffCfg.DiffPrettyText(diffs)
	}
	b := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			b.WriteString(InsertOpen + diff.Text + InsertClose)
		case diffpatch.DiffDelete:
			b.WriteString(DeleteOpen + diff.Text + DeleteClose)
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}

// Size returns the number of bytes inserted or deleted going from one
// string to another.
func Size(from, to string) int {
	diffCfg := diffpatch.New()
	res := 0
	for _, diff := range diffCfg.DiffMain(from, to, false) {
		if diff.Type != diffpatch.DiffEqual {
			res += len(diff.Text)
		}
	}
	return res
}
