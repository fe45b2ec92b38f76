package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTextDiff(t *testing.T) {
	t.Run("equal input renders nothing", func(t *testing.T) {
		assert.Empty(t, RenderTextDiff("a\nb\n", "a\nb\n"))
	})

	t.Run("marks inserted and removed lines", func(t *testing.T) {
		before := "<modules>\n  <module>a</module>\n</modules>\n"
		after := "<modules>\n  <module>b</module>\n</modules>\n"

		out := RenderTextDiff(before, after)
		assert.Contains(t, out, "- "+"  <module>a</module>")
		assert.Contains(t, out, "+ "+"  <module>b</module>")
		assert.Contains(t, out, "  <modules>")
	})

	t.Run("collapses unchanged runs outside the context", func(t *testing.T) {
		var lines []string
		for i := 0; i < 10; i++ {
			lines = append(lines, "line")
		}
		before := strings.Join(lines, "\n") + "\n"
		after := before + "added\n"

		out := RenderTextDiff(before, after)
		assert.Contains(t, out, "...")
		assert.Contains(t, out, "+ added")
		assert.Equal(t, diffContext, strings.Count(out, "  line\n"))
	})
}

func TestIndentDiff(t *testing.T) {
	t.Run("indents each line", func(t *testing.T) {
		input := "line1\nline2\nline3"
		result := IndentDiff(input, "    ")

		expected := "    line1\n    line2\n    line3\n"
		assert.Equal(t, expected, result)
	})

	t.Run("skips empty lines", func(t *testing.T) {
		input := "line1\n\nline2"
		result := IndentDiff(input, "  ")

		expected := "  line1\n  line2\n"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty for empty input", func(t *testing.T) {
		result := IndentDiff("", "    ")
		assert.Empty(t, result)
	})
}
