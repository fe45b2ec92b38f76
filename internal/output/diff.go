package output

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 2

// RenderTextDiff renders a line-oriented diff between before and after.
// Unchanged runs longer than the context window are collapsed to "...".
func RenderTextDiff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	type diffLine struct {
		op   diffmatchpatch.Operation
		text string
	}

	var all []diffLine
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			all = append(all, diffLine{op: d.Type, text: l})
		}
	}

	keep := make([]bool, len(all))
	for i, l := range all {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := i - diffContext; j <= i+diffContext; j++ {
			if j >= 0 && j < len(all) {
				keep[j] = true
			}
		}
	}

	var sb strings.Builder
	skipped := false
	for i, l := range all {
		if !keep[i] {
			if !skipped {
				sb.WriteString(StyleDim.Render("  ..."))
				sb.WriteString("\n")
				skipped = true
			}
			continue
		}
		skipped = false

		switch l.op {
		case diffmatchpatch.DiffInsert:
			sb.WriteString(StyleAdded.Render("+ " + l.text))
		case diffmatchpatch.DiffDelete:
			sb.WriteString(StyleRemoved.Render("- " + l.text))
		default:
			sb.WriteString("  " + l.text)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// IndentDiff indents every non-empty line of diff.
func IndentDiff(diff string, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
