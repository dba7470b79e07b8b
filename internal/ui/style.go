package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorBlue  = lipgloss.Color("#4A90E2")
	ColorGreen = lipgloss.Color("#2ECC71")
	ColorRed   = lipgloss.Color("#DC3545")
	ColorDim   = lipgloss.Color("#928374")
	ColorTime  = lipgloss.Color("#646CFF")
)

var (
	StyleHeader = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	StyleTotal  = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	StyleError  = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleTime   = lipgloss.NewStyle().Foreground(ColorTime).Bold(true)
	StyleCursor = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
)

// Header renders a section title with an underline.
func Header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(text), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// FieldError renders a field-level validation message.
func FieldError(field, msg string) string {
	return StyleError.Render(fmt.Sprintf("%s: %s", field, msg))
}
