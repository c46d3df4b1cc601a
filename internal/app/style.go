package app

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5A50A"))
)

// WithColor styles mock headers and duplicate warnings on outW. Callers
// enable it only when outW is a terminal.
func WithColor(enabled bool) Option {
	return func(a *App) { a.color = enabled }
}

func (a *App) styled(s lipgloss.Style, text string) string {
	if !a.color {
		return text
	}
	return s.Render(text)
}
