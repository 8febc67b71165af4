package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// fitText word-wraps value to width and keeps at most maxLines lines,
// ending the last kept line with an ellipsis when text was dropped.
func fitText(value string, width, maxLines int) string {
	value = strings.TrimSpace(value)
	if width <= 0 || maxLines <= 0 || value == "" {
		return ""
	}
	lines := strings.Split(ansi.Wrap(value, width, ""), "\n")
	if len(lines) <= maxLines {
		return strings.Join(lines, "\n")
	}
	lines = lines[:maxLines]
	last := strings.TrimRight(lines[maxLines-1], " ")
	lines[maxLines-1] = ansi.Truncate(last, width-1, "") + "…"
	return strings.Join(lines, "\n")
}

// truncate shortens a single line to width columns, adding an ellipsis if needed.
func truncate(value string, width int) string {
	value = strings.TrimSpace(value)
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(value, width, "…")
}
