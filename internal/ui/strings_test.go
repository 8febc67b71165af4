package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestFitText(t *testing.T) {
	got := fitText("the quick brown fox jumps over the lazy dog", 10, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("fitText lines = %q, want 2 lines", lines)
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("last line = %q, want ellipsis", lines[1])
	}

	if got := fitText("short", 10, 3); got != "short" {
		t.Fatalf("fitText = %q, want %q", got, "short")
	}
	if got := fitText("  ", 10, 3); got != "" {
		t.Fatalf("fitText(blank) = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Fatalf("truncate = %q, want %q", got, "abcd…")
	}
	if got := truncate("abc", 5); got != "abc" {
		t.Fatalf("truncate = %q, want %q", got, "abc")
	}
}

func TestBgStyle(t *testing.T) {
	bar := newBgStyle("#123456")
	if got := ansi.Strip(bar.render("two  words", lipgloss.NewStyle())); got != "two  words" {
		t.Fatalf("render = %q, want spacing kept", got)
	}
	if got := bar.render("", lipgloss.NewStyle()); got != "" {
		t.Fatalf("render(empty) = %q, want empty", got)
	}
	if got := ansi.Strip(bar.spaces(3)); got != "   " {
		t.Fatalf("spaces(3) = %q, want 3 spaces", got)
	}
	if got := bar.spaces(0); got != "" {
		t.Fatalf("spaces(0) = %q, want empty", got)
	}
}
