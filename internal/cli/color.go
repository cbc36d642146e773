package cli

import (
	"os"

	"github.com/Flyrell/paycal/internal/status"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	textStyle    = lipgloss.NewStyle()
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }

// classStyles mirror the calendar colours: overtime stands out, days off are
// muted and canal days are informational.
var classStyles = map[status.Class]lipgloss.Style{
	status.ClassOvertime: warningStyle,
	status.ClassOff:      silentStyle,
	status.ClassCanal:    infoStyle,
	status.ClassRegular:  textStyle,
}

// StatusText renders a status in the colour of its class.
func StatusText(text string) string {
	style, ok := classStyles[status.Classify(text)]
	if !ok {
		return text
	}
	return style.Render(text)
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f any) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
