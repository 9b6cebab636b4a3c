package domain

// Game holds the state of a Reversi match: the board plus whose turn it is
// and whether play has finished.
type Game struct {
	Board  *Board
	Turn   TileState
	Winner TileState
	Over   bool
	Moves  int
}

// NewGame returns a fresh match on a board of the given size, Black to move.
func NewGame(size int) (*Game, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &Game{Board: b, Turn: Black}, nil
}

// Play places the current player's piece at p. After a successful move the
// turn passes to the opponent if they can move, stays with the mover if only
// they can (the opponent is forced to pass), and otherwise the game ends with
// the winner decided by piece count (Empty on a tie).
func (g *Game) Play(p Position) error {
	if g.Over {
		return ErrGameOver
	}
	if err := g.Board.TakeMove(p, g.Turn); err != nil {
		return err
	}
	g.Moves++

	opp := g.Turn.Opponent()
	switch {
	case g.Board.HasLegalMove(opp):
		g.Turn = opp
	case g.Board.HasLegalMove(g.Turn):
		// opponent passes, mover goes again
	default:
		g.Over = true
		g.Winner = g.leader()
	}
	return nil
}

// LegalMoves returns the current player's legal moves, or nil once the game
// is over.
func (g *Game) LegalMoves() []Position {
	if g.Over {
		return nil
	}
	return g.Board.LegalMoves(g.Turn)
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	cp := *g
	cp.Board = g.Board.Clone()
	return &cp
}

func (g *Game) leader() TileState {
	black, white := g.Board.Counts()
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
