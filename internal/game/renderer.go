package game

import "github.com/five82/clueboard/internal/board"

// Renderer is the narrow surface through which the game updates a display.
// Nothing else in the game touches the UI.
type Renderer interface {
	// Clear removes all header and body content.
	Clear()
	// SetLoading shows or hides the loading indicator and disables or
	// enables the start control to match.
	SetLoading(loading bool)
	// ShowError presents a failed game start to the user.
	ShowError(err error)
	// RenderHeaders draws one header per category in board order.
	RenderHeaders(b *board.Board)
	// RenderGrid draws every cell with the hidden placeholder.
	RenderGrid(b *board.Board)
	// UpdateCell replaces one cell's content. A cell updated with
	// board.Answer becomes non-interactive.
	UpdateCell(id board.CellID, text string, revealed board.RevealState)
}
