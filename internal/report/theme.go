package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	OK       lipgloss.Style
	Fail     lipgloss.Style
	Card     lipgloss.Style
}

// newTheme binds styles to w so color and bold are dropped when w is not a
// terminal.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		Title:    r.NewStyle().Bold(true),
		Subtitle: r.NewStyle().Faint(true),
		Label:    r.NewStyle().Foreground(lipgloss.Color("63")),
		OK:       r.NewStyle().Foreground(lipgloss.Color("42")),
		Fail:     r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Card: r.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
