package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/clueboard/internal/trivia"
)

// RevealState is how much of a clue is visible. It only moves forward:
// Hidden, then Question, then Answer, which is terminal until the board is
// replaced.
type RevealState int

const (
	Hidden RevealState = iota
	Question
	Answer
)

func (s RevealState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Question:
		return "question"
	case Answer:
		return "answer"
	default:
		return "RevealState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Clue is one question/answer pair with its reveal state.
type Clue struct {
	Question string
	Answer   string
	State    RevealState
}

// Category is a titled column of clues.
type Category struct {
	ID    trivia.CategoryID
	Title string
	Clues []*Clue
}

// Board is the ordered set of categories for one game. Cells are identified
// by position, never by content.
type Board struct {
	Categories []*Category
}

// ErrUnknownCell is returned for a cell outside the board.
var ErrUnknownCell = errors.New("unknown cell")

// CellID addresses a clue by (category index, clue index).
type CellID struct {
	Category int
	Clue     int
}

// String returns the stable "category-clue" form used to route clicks.
func (c CellID) String() string {
	return strconv.Itoa(c.Category) + "-" + strconv.Itoa(c.Clue)
}

// ParseCellID parses the form produced by CellID.String.
func ParseCellID(s string) (CellID, error) {
	catPart, cluePart, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return CellID{}, fmt.Errorf("parse cell %q: %w", s, ErrUnknownCell)
	}
	cat, err := strconv.Atoi(catPart)
	if err != nil || cat < 0 {
		return CellID{}, fmt.Errorf("parse cell %q: %w", s, ErrUnknownCell)
	}
	clue, err := strconv.Atoi(cluePart)
	if err != nil || clue < 0 {
		return CellID{}, fmt.Errorf("parse cell %q: %w", s, ErrUnknownCell)
	}
	return CellID{Category: cat, Clue: clue}, nil
}

// Reveal is the outcome of advancing a clue. Ignored is set when the clue was
// already showing its answer and nothing changed.
type Reveal struct {
	State   RevealState
	Text    string
	Ignored bool
}

// Size returns the number of categories and the clue count of the first
// category. Boards built by Build are rectangular.
func (b *Board) Size() (categories, clues int) {
	if b == nil || len(b.Categories) == 0 {
		return 0, 0
	}
	return len(b.Categories), len(b.Categories[0].Clues)
}

// Titles returns category titles in board order.
func (b *Board) Titles() []string {
	if b == nil {
		return nil
	}
	titles := make([]string, len(b.Categories))
	for i, cat := range b.Categories {
		titles[i] = cat.Title
	}
	return titles
}

// Clue returns the clue at id.
func (b *Board) Clue(id CellID) (*Clue, bool) {
	if b == nil || id.Category < 0 || id.Category >= len(b.Categories) {
		return nil, false
	}
	clues := b.Categories[id.Category].Clues
	if id.Clue < 0 || id.Clue >= len(clues) {
		return nil, false
	}
	return clues[id.Clue], true
}

// Advance moves the clue at id one step through its reveal sequence and
// returns the text that should now be shown. A clue already at Answer is left
// untouched and the result is marked Ignored.
func (b *Board) Advance(id CellID) (Reveal, error) {
	clue, ok := b.Clue(id)
	if !ok {
		return Reveal{}, fmt.Errorf("advance %s: %w", id, ErrUnknownCell)
	}
	switch clue.State {
	case Hidden:
		clue.State = Question
		return Reveal{State: Question, Text: clue.Question}, nil
	case Question:
		clue.State = Answer
		return Reveal{State: Answer, Text: clue.Answer}, nil
	default:
		return Reveal{State: clue.State, Ignored: true}, nil
	}
}
