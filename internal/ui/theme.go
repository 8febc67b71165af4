package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/clueboard/internal/board"
	"github.com/five82/clueboard/internal/prefs"
)

// Theme defines colors for the board and its chrome.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	SurfaceAlt string // Category headers
	FocusBg    string // Selected cell

	// Cell colors
	CellHidden   string // Face-down clue
	CellQuestion string // Clue showing its question
	CellAnswer   string // Answered clue, drawn disabled

	Border string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		StartButton: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true).
			Padding(0, 1),

		StartDisabled: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Faint)).
			Padding(0, 1),

		CategoryHeader: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true).
			Align(lipgloss.Center, lipgloss.Center),

		cell: map[board.RevealState]lipgloss.Style{
			board.Hidden: lipgloss.NewStyle().
				Background(lipgloss.Color(t.CellHidden)).
				Foreground(lipgloss.Color(t.Warning)).
				Bold(true).
				Align(lipgloss.Center, lipgloss.Center),
			board.Question: lipgloss.NewStyle().
				Background(lipgloss.Color(t.CellQuestion)).
				Foreground(lipgloss.Color(t.Text)).
				Align(lipgloss.Center, lipgloss.Center),
			board.Answer: lipgloss.NewStyle().
				Background(lipgloss.Color(t.CellAnswer)).
				Foreground(lipgloss.Color(t.Faint)).
				Align(lipgloss.Center, lipgloss.Center),
		},
		focusBg: t.FocusBg,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style

	// Text
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style

	// Components
	Header         lipgloss.Style
	Footer         lipgloss.Style
	StartButton    lipgloss.Style
	StartDisabled  lipgloss.Style
	CategoryHeader lipgloss.Style

	cell    map[board.RevealState]lipgloss.Style
	focusBg string
}

// CellStyle returns the style for a clue cell in the given state. Selected
// cells swap in the focus background.
func (s Styles) CellStyle(state board.RevealState, selected bool) lipgloss.Style {
	style, ok := s.cell[state]
	if !ok {
		style = s.cell[board.Hidden]
	}
	if selected {
		style = style.Background(lipgloss.Color(s.focusBg)).Underline(true)
	}
	return style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// DefaultThemeName is used when no preference is saved.
const DefaultThemeName = prefs.DefaultTheme

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#2b3b51", // sel0

		CellHidden:   "#29394f", // bg3
		CellQuestion: "#39506d", // bg4
		CellAnswer:   "#192330", // bg1

		Border: "#39506d", // bg4

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4
		FocusBg:    "#2D4F67", // waveBlue1

		CellHidden:   "#223249", // waveBlue1 dim
		CellQuestion: "#363646", // sumiInk5
		CellAnswer:   "#1F1F28", // sumiInk3

		Border: "#54546D", // sumiInk6

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#0284c7", // sky-600

		CellHidden:   "#1e3a8a", // blue-900
		CellQuestion: "#334155", // slate-700
		CellAnswer:   "#0f172a", // slate-900

		Border: "#334155", // slate-700

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
	}
}
