package ui

import (
	"testing"

	"github.com/five82/clueboard/internal/board"
)

func TestComputeLayout(t *testing.T) {
	l := computeLayout(125, 40, 6, 5)
	if l.cellWidth != 20 {
		t.Fatalf("cellWidth = %d, want 20", l.cellWidth)
	}
	if l.cellHeight != 5 {
		t.Fatalf("cellHeight = %d, want 5", l.cellHeight)
	}
}

func TestComputeLayout_ClampsSmallTerminals(t *testing.T) {
	l := computeLayout(20, 10, 6, 5)
	if l.cellWidth != minCellWidth || l.cellHeight != minCellHeight {
		t.Fatalf("cell = %dx%d, want %dx%d", l.cellWidth, l.cellHeight, minCellWidth, minCellHeight)
	}
}

func TestCellAt(t *testing.T) {
	l := computeLayout(125, 40, 6, 5)
	cases := []struct {
		name   string
		x, y   int
		want   board.CellID
		wantOK bool
	}{
		{"top left", 0, l.rowTop(0), board.CellID{Category: 0, Clue: 0}, true},
		{"cell 2-3", l.columnLeft(2) + 3, l.rowTop(3) + 1, board.CellID{Category: 2, Clue: 3}, true},
		{"last cell edge", l.columnLeft(5) + l.cellWidth - 1, l.rowTop(4) + l.cellHeight - 1, board.CellID{Category: 5, Clue: 4}, true},
		{"column gap", l.columnLeft(1) - 1, l.rowTop(0), board.CellID{}, false},
		{"row gap", 0, l.rowTop(1) - 1, board.CellID{}, false},
		{"header band", 0, gridTop, board.CellID{}, false},
		{"below grid", 0, l.rowTop(5), board.CellID{}, false},
		{"right of grid", l.columnLeft(6), l.rowTop(0), board.CellID{}, false},
		{"negative", -1, l.rowTop(0), board.CellID{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := l.cellAt(tc.x, tc.y)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("cellAt(%d, %d) = %v, %v; want %v, %v", tc.x, tc.y, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestCellAt_EmptyBoard(t *testing.T) {
	l := computeLayout(125, 40, 0, 0)
	if _, ok := l.cellAt(1, 10); ok {
		t.Fatalf("cellAt on empty layout reported a cell")
	}
}
