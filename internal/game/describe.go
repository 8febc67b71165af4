package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/five82/clueboard/internal/board"
	"github.com/five82/clueboard/internal/trivia"
)

// Describe turns a start failure into a short message for the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var (
		netErr   *trivia.NetworkError
		shapeErr *trivia.DataShapeError
		poolErr  *board.InsufficientPoolError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "The trivia service took too long to answer. Try again."
	case errors.As(err, &poolErr):
		return fmt.Sprintf("The trivia service returned too few %s (%d of %d). Try again.", poolErr.What, poolErr.Have, poolErr.Want)
	case errors.As(err, &shapeErr):
		return "The trivia service sent a category we could not read. Try again."
	case errors.As(err, &netErr):
		if netErr.StatusCode > 0 {
			return fmt.Sprintf("The trivia service answered with status %d. Try again.", netErr.StatusCode)
		}
		return "Could not reach the trivia service. Try again."
	default:
		return "Could not start a new game. Try again."
	}
}
