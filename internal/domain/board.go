package domain

import (
	"fmt"
	"strings"
)

// TileState represents the occupancy of a single board cell.
type TileState uint8

const (
	Empty TileState = iota
	White
	Black
)

// String returns a lowercase name suitable for logs and API payloads.
func (t TileState) String() string {
	switch t {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "empty"
	}
}

// Opponent returns the opposing colour. Empty has no opponent and maps to itself.
func (t TileState) Opponent() TileState {
	switch t {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

func (t TileState) token() string {
	switch t {
	case White:
		return "W"
	case Black:
		return "B"
	default:
		return "."
	}
}

// Position identifies a board cell by coordinate. It is a plain value type so
// two independently built positions with equal coordinates are the same map key.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// The 8 compass deltas used by the capture scan.
var directions = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a square Reversi board. Every in-range position always has an
// entry in cells; positions outside [0,size) on either axis are never stored.
type Board struct {
	size  int
	cells map[Position]TileState
}

// NewBoard returns a board of the given side length with the standard four
// center pieces placed. The size must be a positive even number.
func NewBoard(size int) (*Board, error) {
	if size < 2 || size%2 != 0 {
		return nil, ErrInvalidSize
	}
	b := &Board{size: size, cells: make(map[Position]TileState, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			b.cells[Position{x, y}] = Empty
		}
	}
	mid := size / 2
	b.cells[Position{mid - 1, mid - 1}] = White
	b.cells[Position{mid, mid}] = White
	b.cells[Position{mid - 1, mid}] = Black
	b.cells[Position{mid, mid - 1}] = Black
	return b, nil
}

// Size returns the board's side length.
func (b *Board) Size() int { return b.size }

// InRange reports whether p lies on the board.
func (b *Board) InRange(p Position) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// At returns the state of the cell at p, or Empty if p is out of range.
func (b *Board) At(p Position) TileState {
	if !b.InRange(p) {
		return Empty
	}
	return b.cells[p]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make(map[Position]TileState, len(b.cells))
	for p, t := range b.cells {
		cells[p] = t
	}
	return &Board{size: b.size, cells: cells}
}

// CapturedPieces returns every opposing piece that placing colour at p would
// flip. It walks each of the 8 directions from p: an out-of-range or empty
// cell ends a direction with nothing, a cell of colour ends it yielding the
// run walked so far, and an opposing cell extends the run. Rays are disjoint,
// so concatenating them is already the union. The result never contains p
// itself. Pure; the board is not touched.
func (b *Board) CapturedPieces(p Position, colour TileState) []Position {
	var captured []Position
	for _, d := range directions {
		var run []Position
		cur := Position{p.X + d.X, p.Y + d.Y}
		for {
			if !b.InRange(cur) {
				break
			}
			switch b.cells[cur] {
			case Empty:
				// Unbracketed ray, nothing to flip.
			case colour:
				captured = append(captured, run...)
			default:
				run = append(run, cur)
				cur = Position{cur.X + d.X, cur.Y + d.Y}
				continue
			}
			break
		}
	}
	return captured
}

// IsLegalMove reports whether colour may be placed at p: the cell must be on
// the board, empty, and capture at least one piece. Out-of-range positions
// are legal nowhere rather than an error.
func (b *Board) IsLegalMove(p Position, colour TileState) bool {
	if !b.InRange(p) || b.cells[p] != Empty {
		return false
	}
	return len(b.CapturedPieces(p, colour)) > 0
}

// TakeMove places colour at p and flips every captured piece. If the move is
// not legal it returns an IllegalMoveError and leaves the board unchanged;
// otherwise all flips land together with the placement.
func (b *Board) TakeMove(p Position, colour TileState) error {
	if !b.IsLegalMove(p, colour) {
		return &IllegalMoveError{Pos: p, Colour: colour}
	}
	for _, c := range b.CapturedPieces(p, colour) {
		b.cells[c] = colour
	}
	b.cells[p] = colour
	return nil
}

// LegalMoves returns every position where colour may legally move, in
// row-major order.
func (b *Board) LegalMoves(colour TileState) []Position {
	var moves []Position
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			p := Position{x, y}
			if b.IsLegalMove(p, colour) {
				moves = append(moves, p)
			}
		}
	}
	return moves
}

// HasLegalMove reports whether colour has at least one legal move.
func (b *Board) HasLegalMove(colour TileState) bool {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.IsLegalMove(Position{x, y}, colour) {
				return true
			}
		}
	}
	return false
}

// Counts tallies the pieces of each colour on the board.
func (b *Board) Counts() (black, white int) {
	for _, t := range b.cells {
		switch t {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// String renders the board row by row for debugging, one token per cell.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.cells[Position{x, y}].token())
		}
	}
	return sb.String()
}
