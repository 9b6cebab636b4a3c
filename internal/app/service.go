package app

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jaminalder/codex-reversi/internal/domain"
)

// Errors exposed by the service layer.
var ErrNotFound = errors.New("game not found")

// GameState is the in-memory state tracked per game.
type GameState struct {
	ID      string
	Game    *domain.Game
	Created time.Time
	Updated time.Time
}

// Service manages games. It serializes all access to its games behind a
// mutex; Reversi turns are strictly sequential, so one lock per registry is
// enough for any number of HTTP callers.
type Service struct {
	mu    sync.Mutex
	games map[string]*GameState
	size  int
}

// NewService creates a service whose games use boards of the given size.
func NewService(boardSize int) *Service {
	return &Service{
		games: make(map[string]*GameState),
		size:  boardSize,
	}
}

// CreateGame creates and registers a new game.
func (s *Service) CreateGame() (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, err := domain.NewGame(s.size)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	gs := &GameState{ID: uuid.NewString(), Game: g, Created: now, Updated: now}
	s.games[gs.ID] = gs
	return snapshot(gs), nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, false
	}
	return snapshot(gs), true
}

// Play applies a move for the current player and updates timestamps.
func (s *Service) Play(id string, p domain.Position) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := gs.Game.Play(p); err != nil {
		return nil, err
	}
	gs.Updated = time.Now()
	return snapshot(gs), nil
}

// LegalMoves returns the current player's legal moves for the given game.
func (s *Service) LegalMoves(id string) ([]domain.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return gs.Game.LegalMoves(), nil
}

// snapshot deep-copies a game state so callers never alias the live board.
func snapshot(gs *GameState) *GameState {
	cp := *gs
	cp.Game = gs.Game.Clone()
	return &cp
}
