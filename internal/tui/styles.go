package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	cursorRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))

	seatAvailableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	seatSelectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	seatOccupiedStyle  = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	seatCursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("5"))
)

func hint(s string) string {
	return faintStyle.Render(s)
}
