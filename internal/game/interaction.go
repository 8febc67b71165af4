package game

import (
	"log/slog"

	"github.com/five82/clueboard/internal/board"
)

// Click advances the clue at id and pushes the revealed text to r. It
// reports whether anything changed. Clicks during a load, before the first
// board, on unknown cells, or on answered clues are dropped.
func (g *Game) Click(id board.CellID, r Renderer) bool {
	g.mu.Lock()
	if g.phase == PhaseLoading || g.board == nil {
		g.mu.Unlock()
		return false
	}
	reveal, err := g.board.Advance(id)
	g.mu.Unlock()

	if err != nil {
		g.logger.Debug("click dropped", slog.String("cell", id.String()), slog.String("error", err.Error()))
		return false
	}
	if reveal.Ignored {
		return false
	}
	r.UpdateCell(id, reveal.Text, reveal.State)
	return true
}

// ClickCell is Click for a cell identifier in its string form.
func (g *Game) ClickCell(cell string, r Renderer) bool {
	id, err := board.ParseCellID(cell)
	if err != nil {
		g.logger.Debug("click dropped", slog.String("cell", cell), slog.String("error", err.Error()))
		return false
	}
	return g.Click(id, r)
}
