package domain

import (
	"errors"
	"fmt"
)

// Errors returned by domain operations.
var (
	ErrInvalidSize = errors.New("board size must be a positive even number")
	ErrGameOver    = errors.New("game over")
)

// IllegalMoveError reports an attempt to play a move that is not legal:
// the cell is occupied, out of range, or captures nothing.
type IllegalMoveError struct {
	Pos    Position
	Colour TileState
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: %s at %s", e.Colour, e.Pos)
}
