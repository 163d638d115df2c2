package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chaiwat-s/onepage/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// toneStyles is the bar palette cycled across Gantt task rows. Its length
// matches timeline.PaletteSize; tones carry no meaning beyond position.
var toneStyles = []lipgloss.Style{
	StyleBlue,
	StyleGreen,
	StyleYellow,
	StylePurple,
	lipgloss.NewStyle().Foreground(ColorAqua),
	lipgloss.NewStyle().Foreground(ColorHeader),
}

// ToneStyle returns the bar style for a task tone index.
func ToneStyle(tone int) lipgloss.Style {
	if tone < 0 {
		tone = 0
	}
	return toneStyles[tone%len(toneStyles)]
}

// StatusPill returns a colored status indicator with the Thai display label.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectOnTrack:
		return StyleGreen.Render("● " + status.Label())
	case domain.ProjectAtRisk:
		return StyleYellow.Render("▲ " + status.Label())
	case domain.ProjectDelayed:
		return StyleRed.Render("▼ " + status.Label())
	case domain.ProjectDone:
		return StyleDim.Render("✔ " + status.Label())
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
