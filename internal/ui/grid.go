package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/clueboard/internal/board"
)

// renderGrid draws the category header band and the clue cells. Before the
// first game, or after a failed one, only a hint is shown.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	cats, clues := m.display.size()
	if cats == 0 || len(m.display.titles) == 0 {
		if m.display.loading || m.display.message != "" {
			return ""
		}
		return styles.MutedText.Render("Press n to start a new game.")
	}

	l := m.layout()
	gap := newBgStyle(m.theme.Background).spaces(gapX)

	headers := make([]string, 0, cats*2)
	for c := 0; c < cats; c++ {
		if c > 0 {
			headers = append(headers, gap)
		}
		title := ""
		if c < len(m.display.titles) {
			title = m.display.titles[c]
		}
		headers = append(headers, styles.CategoryHeader.
			Width(l.cellWidth).
			Height(headerHeight).
			MaxHeight(headerHeight).
			Render(fitText(strings.ToUpper(title), l.cellWidth-2, headerHeight)))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, headers...)}
	for q := 0; q < clues; q++ {
		cells := make([]string, 0, cats*2)
		for c := 0; c < cats; c++ {
			if c > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, m.renderCell(styles, l, board.CellID{Category: c, Clue: q}))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	spacer := strings.Repeat("\n", gapY)
	return strings.Join(rows, "\n"+spacer)
}

func (m Model) renderCell(styles Styles, l gridLayout, id board.CellID) string {
	cell := m.display.cells[id.Category][id.Clue]
	text := cell.text
	if cell.state != board.Hidden {
		text = fitText(text, l.cellWidth-2, l.cellHeight)
	}
	return styles.CellStyle(cell.state, id == m.selected).
		Width(l.cellWidth).
		Height(l.cellHeight).
		MaxHeight(l.cellHeight).
		Render(text)
}

// renderHeaderBar draws the title, the start control and the theme name.
func (m Model) renderHeaderBar() string {
	styles := m.theme.Styles()

	bar := newBgStyle(m.theme.Surface)

	left := bar.render(appTitle, styles.AccentText.Bold(true)) + bar.spaces(titleGap) + m.renderStartControl(styles)
	right := bar.render(m.theme.Name, styles.MutedText)

	space := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return styles.Header.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(left + bar.spaces(space) + right)
}

func (m Model) renderStartControl(styles Styles) string {
	if m.display.loading {
		return styles.StartDisabled.Render(m.spinner.View() + " " + loadingLabel)
	}
	return styles.StartButton.Render(startLabel)
}

// startControlBounds returns the half-open x range of the start control.
func (m Model) startControlBounds() (int, int) {
	start := 1 + lipgloss.Width(appTitle) + titleGap
	return start, start + lipgloss.Width(m.renderStartControl(m.theme.Styles()))
}

func (m Model) renderMessage() string {
	if m.display.message == "" {
		return ""
	}
	return m.theme.Styles().DangerText.Render(truncate(m.display.message, m.width))
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(m.help.View(m.keys))
}
