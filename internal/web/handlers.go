package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jaminalder/codex-reversi/internal/app"
	"github.com/jaminalder/codex-reversi/internal/domain"
)

const maxJSONBodyBytes int64 = 1 << 16

type handlers struct {
	svc *app.Service
}

// stateResponse is the JSON view of a game.
type stateResponse struct {
	ID     string   `json:"id"`
	Size   int      `json:"size"`
	Board  []string `json:"board"`
	Turn   string   `json:"turn"`
	Over   bool     `json:"over"`
	Winner string   `json:"winner,omitempty"`
	Black  int      `json:"black"`
	White  int      `json:"white"`
	Moves  int      `json:"moves"`
}

type playRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type positionResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toStateResponse(gs *app.GameState) stateResponse {
	g := gs.Game
	black, white := g.Board.Counts()
	resp := stateResponse{
		ID:    gs.ID,
		Size:  g.Board.Size(),
		Board: strings.Split(g.Board.String(), "\n"),
		Turn:  g.Turn.String(),
		Over:  g.Over,
		Black: black,
		White: white,
		Moves: g.Moves,
	}
	if g.Over {
		resp.Winner = g.Winner.String()
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.CreateGame()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to create game"})
		return
	}
	writeJSON(w, http.StatusCreated, toStateResponse(gs))
}

func (h *handlers) state(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	gs, ok := h.svc.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
		return
	}
	writeJSON(w, http.StatusOK, toStateResponse(gs))
}

// board serves the plain-text dump of the grid, one row per line.
func (h *handlers) board(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	gs, ok := h.svc.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(gs.Game.Board.String() + "\n"))
}

func (h *handlers) legal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	moves, err := h.svc.LegalMoves(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
		return
	}
	out := make([]positionResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, positionResponse{X: m.X, Y: m.Y})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req playRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	gs, err := h.svc.Play(id, domain.Position{X: req.X, Y: req.Y})
	if err != nil {
		var illegal *domain.IllegalMoveError
		switch {
		case errors.Is(err, app.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
		case errors.Is(err, domain.ErrGameOver):
			writeJSON(w, http.StatusConflict, errorResponse{Error: "game is over"})
		case errors.As(err, &illegal):
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: illegal.Error()})
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid move"})
		}
		return
	}
	writeJSON(w, http.StatusOK, toStateResponse(gs))
}
