package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var helpGroupTitles = []string{"Move", "Play", "General"}

// renderHelp draws the full key list from keyMap.FullHelp in a centered
// modal, with mouse use noted under the board group.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Width(12)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))

	for i, group := range m.keys.FullHelp() {
		b.WriteString("\n\n")
		title := ""
		if i < len(helpGroupTitles) {
			title = helpGroupTitles[i]
		}
		b.WriteString(styles.AccentText.Bold(true).Render(title))
		for _, binding := range group {
			b.WriteString("\n")
			b.WriteString(helpLine(binding, keyStyle, styles.Text))
		}
		if i == 1 {
			b.WriteString("\n")
			b.WriteString(keyStyle.Render("click") + styles.Text.Render("Question, then answer"))
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal.Render(b.String()))
}

func helpLine(binding key.Binding, keyStyle, descStyle lipgloss.Style) string {
	h := binding.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc)
}
