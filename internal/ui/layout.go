package ui

import "github.com/five82/clueboard/internal/board"

// Board geometry, in terminal cells.
const (
	// gridTop is the first row of the grid, below the header bar and the
	// message line.
	gridTop = 2

	// footerHeight is the help line at the bottom.
	footerHeight = 1

	// headerHeight is the number of lines reserved for a category title.
	headerHeight = 3

	// gapX separates columns; gapY separates rows and the header band.
	gapX = 1
	gapY = 1

	minCellWidth  = 8
	minCellHeight = 3
	maxCellHeight = 7
)

// gridLayout positions the header band and clue cells on screen. The same
// values drive rendering and mouse hit-testing.
type gridLayout struct {
	categories int
	clues      int
	cellWidth  int
	cellHeight int
}

func computeLayout(width, height, categories, clues int) gridLayout {
	l := gridLayout{categories: categories, clues: clues}
	if categories <= 0 || clues <= 0 {
		return l
	}

	l.cellWidth = (width - (categories-1)*gapX) / categories
	if l.cellWidth < minCellWidth {
		l.cellWidth = minCellWidth
	}

	avail := height - gridTop - footerHeight - headerHeight
	l.cellHeight = (avail - clues*gapY) / clues
	if l.cellHeight < minCellHeight {
		l.cellHeight = minCellHeight
	}
	if l.cellHeight > maxCellHeight {
		l.cellHeight = maxCellHeight
	}
	return l
}

// columnLeft returns the x offset of category column c.
func (l gridLayout) columnLeft(c int) int {
	return c * (l.cellWidth + gapX)
}

// rowTop returns the y offset of clue row r.
func (l gridLayout) rowTop(r int) int {
	return gridTop + headerHeight + gapY + r*(l.cellHeight+gapY)
}

// cellAt maps a screen position to the clue cell under it. Positions on
// the header band, in gaps, or outside the grid report false.
func (l gridLayout) cellAt(x, y int) (board.CellID, bool) {
	if l.categories <= 0 || l.clues <= 0 || x < 0 {
		return board.CellID{}, false
	}

	colStride := l.cellWidth + gapX
	col := x / colStride
	if col >= l.categories || x%colStride >= l.cellWidth {
		return board.CellID{}, false
	}

	rel := y - l.rowTop(0)
	if rel < 0 {
		return board.CellID{}, false
	}
	rowStride := l.cellHeight + gapY
	row := rel / rowStride
	if row >= l.clues || rel%rowStride >= l.cellHeight {
		return board.CellID{}, false
	}
	return board.CellID{Category: col, Clue: row}, true
}
