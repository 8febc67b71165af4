package ui

import (
	"github.com/five82/clueboard/internal/board"
	"github.com/five82/clueboard/internal/game"
)

// placeholder is drawn on every face-down clue.
const placeholder = "?"

type cellView struct {
	text  string
	state board.RevealState
}

// display is the terminal's game.Renderer. It records what the board should
// look like; View turns it into text. Update is the only caller, so no
// locking is needed.
type display struct {
	loading bool
	message string
	titles  []string
	cells   [][]cellView // [category][clue]
}

var _ game.Renderer = (*display)(nil)

func (d *display) Clear() {
	d.message = ""
	d.titles = nil
	d.cells = nil
}

func (d *display) SetLoading(loading bool) {
	d.loading = loading
}

func (d *display) ShowError(err error) {
	d.message = game.Describe(err)
}

func (d *display) RenderHeaders(b *board.Board) {
	d.titles = b.Titles()
}

func (d *display) RenderGrid(b *board.Board) {
	cats, clues := b.Size()
	d.cells = make([][]cellView, cats)
	for c := range d.cells {
		d.cells[c] = make([]cellView, clues)
		for q := range d.cells[c] {
			d.cells[c][q] = cellView{text: placeholder, state: board.Hidden}
		}
	}
}

func (d *display) UpdateCell(id board.CellID, text string, state board.RevealState) {
	if id.Category < 0 || id.Category >= len(d.cells) {
		return
	}
	col := d.cells[id.Category]
	if id.Clue < 0 || id.Clue >= len(col) {
		return
	}
	col[id.Clue] = cellView{text: text, state: state}
}

// size reports the dimensions of the drawn grid.
func (d *display) size() (categories, clues int) {
	if len(d.cells) == 0 {
		return 0, 0
	}
	return len(d.cells), len(d.cells[0])
}
