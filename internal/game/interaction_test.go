package game

import (
	"context"
	"testing"

	"github.com/five82/clueboard/internal/board"
)

func startedGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	g := newTestGame(newFakeSource(100))
	r := &recorder{}
	if err := g.Start(context.Background(), r); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	return g, r
}

func TestClick_QuestionThenAnswerThenIgnored(t *testing.T) {
	g, r := startedGame(t)
	id := board.CellID{Category: 2, Clue: 3}
	clue, ok := g.Board().Clue(id)
	if !ok {
		t.Fatalf("cell %v missing", id)
	}

	if !g.Click(id, r) {
		t.Fatalf("first Click reported no change")
	}
	if clue.State != board.Question {
		t.Fatalf("State = %v, want question", clue.State)
	}
	if !g.ClickCell("2-3", r) {
		t.Fatalf("second Click reported no change")
	}
	if clue.State != board.Answer {
		t.Fatalf("State = %v, want answer", clue.State)
	}
	if g.Click(id, r) {
		t.Fatalf("third Click reported a change, want ignored")
	}

	if len(r.updates) != 2 {
		t.Fatalf("updates = %#v, want 2", r.updates)
	}
	if r.updates[0].text != clue.Question || r.updates[0].state != board.Question {
		t.Fatalf("first update = %#v, want question text", r.updates[0])
	}
	if r.updates[1].text != clue.Answer || r.updates[1].state != board.Answer {
		t.Fatalf("second update = %#v, want answer text", r.updates[1])
	}
}

func TestClick_DropsBadTargets(t *testing.T) {
	g, r := startedGame(t)
	before := len(r.updates)
	if g.Click(board.CellID{Category: 99, Clue: 0}, r) {
		t.Fatalf("Click on unknown cell reported a change")
	}
	if g.ClickCell("header", r) {
		t.Fatalf("ClickCell on malformed id reported a change")
	}
	if len(r.updates) != before {
		t.Fatalf("renderer updated for a dropped click")
	}
}

func TestClick_BeforeFirstGame(t *testing.T) {
	g := newTestGame(newFakeSource(100))
	if g.Click(board.CellID{}, &recorder{}) {
		t.Fatalf("Click before first game reported a change")
	}
}
