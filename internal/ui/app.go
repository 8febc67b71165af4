package ui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/clueboard/internal/board"
	"github.com/five82/clueboard/internal/game"
	"github.com/five82/clueboard/internal/prefs"
)

const (
	appTitle     = "clueboard"
	titleGap     = 2
	startLabel   = "Start a New Game! (n)"
	loadingLabel = "Loading..."
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Game      *game.Game
	Logger    *slog.Logger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	game      *game.Game
	logger    *slog.Logger
	prefsPath string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Board state
	display  *display
	selected board.CellID
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = DefaultThemeName
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:       ctx,
		game:      opts.Game,
		logger:    logger,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		keys:      defaultKeyMap(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		display:   &display{},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case boardLoadedMsg:
		// Finish logs and renders the outcome; the error is already shown.
		_ = m.game.Finish(msg.board, msg.err, m.display)
		m.selected = board.CellID{}
		return m, nil

	case spinner.TickMsg:
		if !m.display.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return loadingLabel
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeaderBar())
	b.WriteString("\n")
	b.WriteString(m.renderMessage())
	b.WriteString("\n")

	grid := m.renderGrid()
	b.WriteString(grid)

	// Pin the footer to the last line.
	used := gridTop + strings.Count(grid, "\n") + 1
	if pad := m.height - footerHeight - used; pad > 0 {
		b.WriteString(strings.Repeat("\n", pad))
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save prefs failed", slog.String("error", err.Error()))
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		return m.startGame()

	case key.Matches(msg, m.keys.Reveal):
		m.clickCell(m.selected)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1, 0)
	}

	return m, nil
}

// handleMouse routes left clicks to the start control or the clue under
// the pointer. Everything else is ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if msg.Y == 0 {
		start, end := m.startControlBounds()
		if msg.X >= start && msg.X < end && !m.display.loading {
			return m.startGame()
		}
		return m, nil
	}

	id, ok := m.layout().cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.selected = id
	m.clickCell(id)
	return m, nil
}

// clickCell dispatches a click unless the cell is already answered, which
// the grid draws as disabled.
func (m Model) clickCell(id board.CellID) {
	if cats, clues := m.display.size(); id.Category >= cats || id.Clue >= clues {
		return
	}
	if m.display.cells[id.Category][id.Clue].state == board.Answer {
		return
	}
	m.game.Click(id, m.display)
}

// startGame begins a load unless one is in flight. The fetch runs in a
// command so the event loop stays responsive.
func (m Model) startGame() (tea.Model, tea.Cmd) {
	if !m.game.Begin() {
		return m, nil
	}
	m.game.Prepare(m.display)
	return m, tea.Batch(m.spinner.Tick, loadBoardCmd(m.ctx, m.game))
}

func (m *Model) moveSelection(dx, dy int) {
	cats, clues := m.display.size()
	if cats == 0 || clues == 0 {
		return
	}
	m.selected.Category = clamp(m.selected.Category+dx, 0, cats-1)
	m.selected.Clue = clamp(m.selected.Clue+dy, 0, clues-1)
}

func (m Model) layout() gridLayout {
	cats, clues := m.display.size()
	return computeLayout(m.width, m.height, cats, clues)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Messages

type boardLoadedMsg struct {
	board *board.Board
	err   error
}

// Commands

func loadBoardCmd(ctx context.Context, g *game.Game) tea.Cmd {
	return func() tea.Msg {
		b, err := g.Load(ctx)
		return boardLoadedMsg{board: b, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	ctx := m.ctx
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
