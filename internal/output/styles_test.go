package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestChangeStyle(t *testing.T) {
	tests := []struct {
		name   string
		kind   string
		wantFG lipgloss.TerminalColor
	}{
		{name: "create returns green", kind: ChangeCreate, wantFG: ColorGreen},
		{name: "update returns yellow", kind: ChangeUpdate, wantFG: ColorYellow},
		{name: "delete returns red", kind: ChangeDelete, wantFG: ColorRed},
		{name: "unknown is unstyled", kind: "RENAME", wantFG: lipgloss.NoColor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFG, ChangeStyle(tt.kind).GetForeground())
		})
	}
}

func TestFormatChangeLine(t *testing.T) {
	tests := []struct {
		kind string
		path string
	}{
		{ChangeCreate, "nx-maven/apps/my-app/pom.xml"},
		{ChangeUpdate, "nx-maven/pom.xml"},
		{ChangeDelete, "old.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			line := FormatChangeLine(tt.kind, tt.path)

			assert.Contains(t, line, tt.kind)
			assert.True(t, strings.HasSuffix(line, " "+tt.path))
		})
	}

	t.Run("long kinds keep one space", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(FormatChangeLine("OVERWRITE", "x"), "OVERWRITE x"))
	})
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("Generated my-app")
	assert.Contains(t, result, "✔")
	assert.Contains(t, result, "Generated my-app")
}
