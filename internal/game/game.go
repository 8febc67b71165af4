package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/five82/clueboard/internal/board"
	"github.com/five82/clueboard/internal/trivia"
)

// Phase is the lifecycle state of a Game.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
)

func (p Phase) String() string {
	if p == PhaseLoading {
		return "loading"
	}
	return "idle"
}

// ErrBusy is returned by Start when a game is already loading.
var ErrBusy = errors.New("game is already loading")

// Source is the slice of the trivia service the game reads from.
type Source interface {
	FetchCategoryPool(ctx context.Context, poolSize int) ([]trivia.CategoryID, error)
	board.CategoryFetcher
}

// Settings are the size constants and limits for a game.
type Settings struct {
	CategoryCount    int
	CluesPerCategory int
	PoolSize         int
	LoadTimeout      time.Duration
}

const (
	DefaultCategoryCount    = 6
	DefaultCluesPerCategory = 5
	DefaultPoolSize         = 100
	DefaultLoadTimeout      = 30 * time.Second
)

func (s Settings) withDefaults() Settings {
	if s.CategoryCount <= 0 {
		s.CategoryCount = DefaultCategoryCount
	}
	if s.CluesPerCategory <= 0 {
		s.CluesPerCategory = DefaultCluesPerCategory
	}
	if s.PoolSize <= 0 {
		s.PoolSize = DefaultPoolSize
	}
	if s.LoadTimeout <= 0 {
		s.LoadTimeout = DefaultLoadTimeout
	}
	return s
}

// Game owns one board and the Idle/Loading guard around replacing it.
// Its methods are safe for concurrent use; at most one load is in flight.
type Game struct {
	source   Source
	settings Settings
	rng      *rand.Rand
	logger   *slog.Logger

	mu    sync.Mutex
	phase Phase
	board *board.Board
}

// Option adjusts a Game at construction time.
type Option func(*Game)

// WithRand fixes the random source, mainly for tests.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New returns an idle Game with an empty board.
func New(source Source, settings Settings, opts ...Option) *Game {
	g := &Game{
		source:   source,
		settings: settings.withDefaults(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Settings returns the effective settings.
func (g *Game) Settings() Settings {
	return g.settings
}

// Phase reports whether a load is in flight.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Board returns the current board, or nil before the first successful game.
func (g *Game) Board() *board.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

// Begin moves Idle to Loading. It reports false, changing nothing, when a
// load is already in flight.
func (g *Game) Begin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase == PhaseLoading {
		g.logger.Debug("start ignored while loading")
		return false
	}
	g.phase = PhaseLoading
	g.logger.Info("game start")
	return true
}

// Prepare clears the display and shows the loading state.
func (g *Game) Prepare(r Renderer) {
	r.Clear()
	r.SetLoading(true)
}

// Load fetches the category pool, picks the game's categories and builds a
// fresh board, one category at a time. It does not touch the current board.
// Callers must hold the Loading phase (see Begin).
func (g *Game) Load(ctx context.Context) (*board.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, g.settings.LoadTimeout)
	defer cancel()

	pool, err := g.source.FetchCategoryPool(ctx, g.settings.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	ids, err := board.SelectRandomCategoryIDs(g.rng, pool, g.settings.CategoryCount)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	b, err := board.Build(ctx, g.source, g.rng, ids, g.settings.CluesPerCategory)
	if err != nil {
		return nil, fmt.Errorf("build board: %w", err)
	}
	return b, nil
}

// Finish commits the outcome of Load and returns to Idle. On success the
// board is replaced wholesale and rendered; on failure the previous board is
// discarded, nothing is rendered and the error is shown. The error is
// returned unchanged.
func (g *Game) Finish(b *board.Board, err error, r Renderer) error {
	g.mu.Lock()
	if err == nil && b == nil {
		err = errors.New("build board: no board produced")
	}
	if err != nil {
		g.board = nil
	} else {
		g.board = b
	}
	g.phase = PhaseIdle
	g.mu.Unlock()

	r.SetLoading(false)
	if err != nil {
		g.logger.Warn("game start failed", slog.String("error", err.Error()))
		r.ShowError(err)
		return err
	}
	cats, clues := b.Size()
	g.logger.Info("game ready", slog.Int("categories", cats), slog.Int("clues", clues))
	r.RenderHeaders(b)
	r.RenderGrid(b)
	return nil
}

// Start runs the whole start procedure synchronously: guard, prepare, load,
// finish. It returns ErrBusy without side effects when a load is in flight.
func (g *Game) Start(ctx context.Context, r Renderer) error {
	if !g.Begin() {
		return ErrBusy
	}
	g.Prepare(r)
	b, err := g.Load(ctx)
	return g.Finish(b, err, r)
}
