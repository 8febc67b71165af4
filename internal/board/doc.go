// Package board holds the in-memory game board: categories of clues, each
// clue with a reveal state that only moves forward.
//
// A Board is built once per game by Build, which samples categories and clues
// uniformly without replacement, and is replaced wholesale on the next game.
// Clicks address cells positionally with CellID, whose string form
// "category-clue" is what renderers attach to each cell.
package board
