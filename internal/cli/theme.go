package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles used for terminal output.
type Theme struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
	Hint   lipgloss.Style
	Border lipgloss.Style
}

var defaultTheme = Theme{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFD7")),
	Label:  lipgloss.NewStyle().Bold(true),
	Good:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787")),
	Bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF005F")),
	Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C")).Italic(true),
	Border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
}

var plainTheme = Theme{
	Title:  lipgloss.NewStyle(),
	Label:  lipgloss.NewStyle(),
	Good:   lipgloss.NewStyle(),
	Bad:    lipgloss.NewStyle(),
	Hint:   lipgloss.NewStyle(),
	Border: lipgloss.NewStyle(),
}

// swatch renders a colour block in the given hex colour.
func (t Theme) swatch(hex string) string {
	if t.Title.GetBold() {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●") + " " + hex
	}
	return hex
}

func (t Theme) check(met bool) string {
	if met {
		return t.Good.Render("✓")
	}
	return t.Bad.Render("✗")
}
