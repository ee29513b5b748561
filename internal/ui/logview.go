package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLog renders the newest log entries that fit the screen.
func (m Model) renderLog() string {
	styles := m.theme.Styles()
	inner := maxInt(m.width-8, 10)
	rows := maxInt(m.height-6, 1)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Recent log"))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(truncate(m.logPath, maxInt(inner-12, 0))))
	b.WriteString("\n")

	switch {
	case m.logErr != nil:
		b.WriteString(styles.DangerText.Render(truncate(m.logErr.Error(), inner)))
	case len(m.logEntries) == 0:
		b.WriteString(styles.MutedText.Render("No log entries yet"))
	default:
		entries := m.logEntries
		if len(entries) > rows {
			entries = entries[len(entries)-rows:]
		}
		lines := make([]string, len(entries))
		for i, e := range entries {
			style := styles.Text
			switch e.Level {
			case "WARN":
				style = styles.WarningText
			case "ERROR", "DPANIC", "PANIC", "FATAL":
				style = styles.DangerText
			case "DEBUG":
				style = styles.MutedText
			}
			lines[i] = style.Render(truncate(e.String(), inner))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Width(maxInt(m.width-2, 0))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
