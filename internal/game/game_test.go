package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/five82/clueboard/internal/board"
	"github.com/five82/clueboard/internal/trivia"
)

type fakeSource struct {
	mu         sync.Mutex
	pool       []trivia.CategoryID
	poolErr    error
	catErrs    map[trivia.CategoryID]error
	poolCalls  int
	catCalls   []trivia.CategoryID
	poolGate   chan struct{} // when non-nil, FetchCategoryPool blocks until closed
	poolCalled chan struct{}
}

func newFakeSource(poolSize int) *fakeSource {
	pool := make([]trivia.CategoryID, poolSize)
	for i := range pool {
		pool[i] = trivia.CategoryID(fmt.Sprint(i + 1))
	}
	return &fakeSource{pool: pool, catErrs: map[trivia.CategoryID]error{}}
}

func (f *fakeSource) FetchCategoryPool(ctx context.Context, poolSize int) ([]trivia.CategoryID, error) {
	f.mu.Lock()
	f.poolCalls++
	gate, called := f.poolGate, f.poolCalled
	f.mu.Unlock()
	if called != nil {
		close(called)
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.poolErr != nil {
		return nil, f.poolErr
	}
	return f.pool, nil
}

func (f *fakeSource) FetchCategory(_ context.Context, id trivia.CategoryID) (trivia.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catCalls = append(f.catCalls, id)
	if err := f.catErrs[id]; err != nil {
		return trivia.Category{}, err
	}
	cat := trivia.Category{ID: id, Title: "Category " + string(id)}
	for i := 0; i < 10; i++ {
		cat.Clues = append(cat.Clues, trivia.Clue{
			Question: fmt.Sprintf("%s q%d", id, i),
			Answer:   fmt.Sprintf("%s a%d", id, i),
		})
	}
	return cat, nil
}

type recorder struct {
	mu      sync.Mutex
	events  []string
	loading bool
	err     error
	updates []cellUpdate
}

type cellUpdate struct {
	id    board.CellID
	text  string
	state board.RevealState
}

func (r *recorder) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) Clear() { r.record("clear") }
func (r *recorder) SetLoading(loading bool) {
	r.mu.Lock()
	r.loading = loading
	r.mu.Unlock()
	r.record(fmt.Sprintf("loading=%v", loading))
}
func (r *recorder) ShowError(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
	r.record("error")
}
func (r *recorder) RenderHeaders(*board.Board) { r.record("headers") }
func (r *recorder) RenderGrid(*board.Board)    { r.record("grid") }
func (r *recorder) UpdateCell(id board.CellID, text string, state board.RevealState) {
	r.mu.Lock()
	r.updates = append(r.updates, cellUpdate{id: id, text: text, state: state})
	r.mu.Unlock()
	r.record("cell " + id.String())
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGame(src Source) *Game {
	return New(src, Settings{CategoryCount: 6, CluesPerCategory: 5, PoolSize: 100},
		WithRand(rand.New(rand.NewPCG(7, 11))),
		WithLogger(quietLogger()))
}

func equalEvents(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestStart_BuildsAndRendersBoard(t *testing.T) {
	src := newFakeSource(100)
	g := newTestGame(src)
	r := &recorder{}

	if g.Board() != nil {
		t.Fatalf("Board before start = %v, want nil", g.Board())
	}
	if err := g.Start(context.Background(), r); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	want := []string{"clear", "loading=true", "loading=false", "headers", "grid"}
	if got := r.snapshot(); !equalEvents(got, want) {
		t.Fatalf("renderer events = %v, want %v", got, want)
	}
	if g.Phase() != PhaseIdle {
		t.Fatalf("Phase = %v, want idle", g.Phase())
	}

	b := g.Board()
	cats, clues := b.Size()
	if cats != 6 || clues != 5 {
		t.Fatalf("board size = %d x %d, want 6 x 5", cats, clues)
	}
	for _, cat := range b.Categories {
		if len(cat.Clues) != 5 {
			t.Fatalf("category %q has %d clues, want 5", cat.Title, len(cat.Clues))
		}
		for _, clue := range cat.Clues {
			if clue.State != board.Hidden {
				t.Fatalf("clue state = %v, want hidden", clue.State)
			}
		}
	}
	if src.poolCalls != 1 || len(src.catCalls) != 6 {
		t.Fatalf("calls = pool %d, categories %d; want 1 and 6", src.poolCalls, len(src.catCalls))
	}
}

func TestStart_FailureShowsErrorAndReturnsToIdle(t *testing.T) {
	cases := []struct {
		name   string
		setup  func(*fakeSource)
		target any
	}{
		{
			name:   "network",
			setup:  func(f *fakeSource) { f.poolErr = &trivia.NetworkError{Op: "fetch category pool", StatusCode: 503} },
			target: new(*trivia.NetworkError),
		},
		{
			name:   "insufficient pool",
			setup:  func(f *fakeSource) { f.pool = f.pool[:3] },
			target: new(*board.InsufficientPoolError),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := newFakeSource(100)
			tc.setup(src)
			g := newTestGame(src)
			r := &recorder{}

			err := g.Start(context.Background(), r)
			if err == nil || !errors.As(err, tc.target) {
				t.Fatalf("Start error = %v, want %T", err, tc.target)
			}
			want := []string{"clear", "loading=true", "loading=false", "error"}
			if got := r.snapshot(); !equalEvents(got, want) {
				t.Fatalf("renderer events = %v, want %v", got, want)
			}
			if g.Phase() != PhaseIdle {
				t.Fatalf("Phase = %v, want idle", g.Phase())
			}
			if g.Board() != nil {
				t.Fatalf("Board = %v after failed start, want nil", g.Board())
			}
		})
	}
}

func TestStart_CategoryFailureCommitsNothing(t *testing.T) {
	src := newFakeSource(6)
	g := newTestGame(src)
	if err := g.Start(context.Background(), &recorder{}); err != nil {
		t.Fatalf("first Start returned error: %v", err)
	}

	for _, id := range src.pool {
		src.catErrs[id] = &trivia.DataShapeError{CategoryID: id, Reason: "missing clues"}
	}
	r := &recorder{}
	err := g.Start(context.Background(), r)
	var shapeErr *trivia.DataShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("Start error = %v, want *DataShapeError", err)
	}
	for _, ev := range r.snapshot() {
		if ev == "headers" || ev == "grid" {
			t.Fatalf("renderer events = %v, want no board rendered", r.snapshot())
		}
	}
	if g.Click(board.CellID{}, r) {
		t.Fatalf("Click after failed start changed state, want inert board")
	}
}

func TestStart_IgnoredWhileLoading(t *testing.T) {
	src := newFakeSource(100)
	src.poolGate = make(chan struct{})
	src.poolCalled = make(chan struct{})
	g := newTestGame(src)
	r := &recorder{}

	done := make(chan error, 1)
	go func() { done <- g.Start(context.Background(), r) }()

	select {
	case <-src.poolCalled:
	case <-time.After(2 * time.Second):
		t.Fatalf("first start never reached the network")
	}
	if g.Phase() != PhaseLoading {
		t.Fatalf("Phase = %v, want loading", g.Phase())
	}

	second := &recorder{}
	if err := g.Start(context.Background(), second); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Start error = %v, want ErrBusy", err)
	}
	if events := second.snapshot(); len(events) != 0 {
		t.Fatalf("second start touched renderer: %v", events)
	}
	if g.Begin() {
		t.Fatalf("Begin succeeded while loading")
	}
	if g.Board() != nil {
		t.Fatalf("Board changed while loading")
	}
	if g.Click(board.CellID{}, r) {
		t.Fatalf("Click during loading was not inert")
	}

	close(src.poolGate)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("first Start returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("first start did not finish")
	}

	src.mu.Lock()
	poolCalls := src.poolCalls
	src.mu.Unlock()
	if poolCalls != 1 {
		t.Fatalf("pool calls = %d, want 1 (no duplicate network calls)", poolCalls)
	}
}

func TestLoad_TimesOut(t *testing.T) {
	src := newFakeSource(100)
	src.poolGate = make(chan struct{})
	defer close(src.poolGate)
	g := New(src, Settings{LoadTimeout: 20 * time.Millisecond}, WithLogger(quietLogger()))

	err := g.Start(context.Background(), &recorder{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Start error = %v, want deadline exceeded", err)
	}
	if g.Phase() != PhaseIdle {
		t.Fatalf("Phase = %v, want idle after timeout", g.Phase())
	}
}

func TestStart_ReplacesBoardWholesale(t *testing.T) {
	src := newFakeSource(100)
	g := newTestGame(src)
	r := &recorder{}
	if err := g.Start(context.Background(), r); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	first := g.Board()
	g.Click(board.CellID{Category: 0, Clue: 0}, r)

	if err := g.Start(context.Background(), r); err != nil {
		t.Fatalf("second Start returned error: %v", err)
	}
	second := g.Board()
	if second == first {
		t.Fatalf("Board pointer unchanged after restart")
	}
	for _, cat := range second.Categories {
		for _, clue := range cat.Clues {
			if clue.State != board.Hidden {
				t.Fatalf("restart carried over reveal state")
			}
		}
	}
}

func TestSettingsDefaults(t *testing.T) {
	g := New(newFakeSource(1), Settings{})
	s := g.Settings()
	if s.CategoryCount != DefaultCategoryCount || s.CluesPerCategory != DefaultCluesPerCategory ||
		s.PoolSize != DefaultPoolSize || s.LoadTimeout != DefaultLoadTimeout {
		t.Fatalf("Settings = %#v, want defaults", s)
	}
}
