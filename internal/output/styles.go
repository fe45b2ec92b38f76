package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for created files.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for updated files.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for deleted files and removed diff lines.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, roots).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings and tree roots.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome and descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleAdded styles added diff lines.
	StyleAdded = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleRemoved styles removed diff lines.
	StyleRemoved = lipgloss.NewStyle().Foreground(ColorRed)
)

// Change kinds shown for staged files.
const (
	ChangeCreate = "CREATE"
	ChangeUpdate = "UPDATE"
	ChangeDelete = "DELETE"
)

// ChangeStyle returns the style for a change kind. Unknown kinds are unstyled.
func ChangeStyle(kind string) lipgloss.Style {
	switch kind {
	case ChangeCreate:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case ChangeUpdate:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case ChangeDelete:
		return lipgloss.NewStyle().Foreground(ColorRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minChangeColumnWidth keeps the change kind column aligned.
const minChangeColumnWidth = 7

// FormatChangeLine renders "<KIND> <path>" with a color-coded kind.
func FormatChangeLine(kind, path string) string {
	padding := minChangeColumnWidth - len(kind)
	if padding < 1 {
		padding = 1
	}
	return ChangeStyle(kind).Render(kind) + strings.Repeat(" ", padding) + path
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
