package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Flyrell/paycal/internal/schedule"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
)

var reportHeader = fmt.Sprintf("%3s  %-10s  %-10s  %-10s  %7s  %6s", "#", "START", "END", "PAYDAY", "REG", "OT")

type reportModel struct {
	data       reportData
	cursor     int // selected row
	scrollY    int // first visible row
	termWidth  int
	termHeight int
}

func newReportModel(data reportData) reportModel {
	m := reportModel{data: data, termWidth: 80, termHeight: 30}
	if data.Current >= 0 {
		m.cursor = data.Current
	}
	return m.ensureCursorVisible()
}

func (m reportModel) visibleRows() int {
	// header(2) + totals(2) + detail(3 + statuses) + footer(2)
	reserved := 9 + len(m.selectedDays())
	available := m.termHeight - reserved
	if available < 1 {
		return 1
	}
	if available > len(m.data.Rows) {
		return len(m.data.Rows)
	}
	return available
}

func (m reportModel) selectedDays() []string {
	if m.cursor < 0 || m.cursor >= len(m.data.Days) {
		return nil
	}
	out := make([]string, len(m.data.Days[m.cursor]))
	for i, r := range m.data.Days[m.cursor] {
		out[i] = fmt.Sprintf("    %s  %s", r.Day, StatusText(r.Status))
	}
	return out
}

func (m reportModel) maxScrollY() int {
	max := len(m.data.Rows) - m.visibleRows()
	if max < 0 {
		return 0
	}
	return max
}

// ensureCursorVisible adjusts scroll so the cursor is within the viewport.
func (m reportModel) ensureCursorVisible() reportModel {
	if m.cursor < m.scrollY {
		m.scrollY = m.cursor
	}
	if m.cursor >= m.scrollY+m.visibleRows() {
		m.scrollY = m.cursor - m.visibleRows() + 1
	}
	if m.scrollY > m.maxScrollY() {
		m.scrollY = m.maxScrollY()
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	return m
}

func (m reportModel) Init() tea.Cmd {
	return nil
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m = m.ensureCursorVisible()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			if m.cursor < len(m.data.Rows)-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.data.Rows) - 1
		case "t":
			if m.data.Current >= 0 {
				m.cursor = m.data.Current
			}
		}
		m = m.ensureCursorVisible()
	}
	return m, nil
}

func (m reportModel) View() string {
	var b strings.Builder
	b.WriteString(renderReportTable(m.data, m.scrollY, m.visibleRows(), m.cursor))

	if m.cursor >= 0 && m.cursor < len(m.data.Rows) {
		p := m.data.Rows[m.cursor].Period
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("  %s", p.String())))
		b.WriteString("\n")
		days := m.selectedDays()
		if len(days) == 0 {
			b.WriteString(Silent("    (no statuses)"))
			b.WriteString("\n")
		}
		for _, d := range days {
			b.WriteString(d)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("  ↑/↓ move  g/G first/last  t today  q quit"))
	return b.String()
}

// renderReportTable renders rows [from, from+n) with the totals line. cursor
// is highlighted unless it is -1.
func renderReportTable(data reportData, from, n, cursor int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(reportHeader))
	b.WriteString("\n")

	end := from + n
	if end > len(data.Rows) {
		end = len(data.Rows)
	}
	for i := from; i < end; i++ {
		r := data.Rows[i]
		line := fmt.Sprintf("%3d  %s  %s  %s  %7s  %6s",
			i+1,
			schedule.DayKey(r.Period.Start),
			schedule.DayKey(r.Period.End),
			schedule.DayKey(r.Payday),
			r.TotalRegular.String(),
			r.TotalOvertime.String(),
		)
		if i == data.Current {
			line += " *"
		}
		if i == cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", len(reportHeader)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-39s  %7s  %6s",
		"     Total", data.Total.Regular.String(), data.Total.Overtime.String())))
	b.WriteString("\n")
	return b.String()
}

func runReportTable(cmd *cobra.Command, data reportData) error {
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print static table
	if !isTerminal(out) {
		return printStaticReport(out, data)
	}

	p := tea.NewProgram(newReportModel(data), tea.WithAltScreen(), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func printStaticReport(w io.Writer, data reportData) error {
	_, err := fmt.Fprint(w, renderReportTable(data, 0, len(data.Rows), -1))
	return err
}
