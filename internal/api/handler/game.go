package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/hangman-go/internal/api/middleware"
	"github.com/mcoot/hangman-go/internal/api/request"
	"github.com/mcoot/hangman-go/internal/api/response"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Start handles POST /api/v1/games
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	g, err := h.gameController.StartGame(r.Context(), user.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	msg := fmt.Sprintf("Good luck playing Hangman! Your word has %d letters.", len(g.TargetWord))
	response.JSON(w, http.StatusCreated, response.GameFromModel(g, msg))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	msg := "Time to make a move!"
	if g.GameOver {
		msg = fmt.Sprintf("Game already over! The word was %s", g.TargetWord)
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, msg))
}

// Guess handles POST /api/v1/games/{id}/guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Guess == "" {
		WriteError(w, NewInvalidRequestError("guess is required"))
		return
	}

	g, msg, err := h.gameController.MakeMove(r.Context(), id, req.Guess)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g, msg))
}

// Cancel handles DELETE /api/v1/games/{id}
func (h *GameHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	msg, err := h.gameController.CancelGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: msg})
}

// History handles GET /api/v1/games/{id}/history
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	history, err := h.gameController.GetHistory(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HistoryFromModel(history))
}

// UserGames handles GET /api/v1/users/{name}/games
func (h *GameHandler) UserGames(w http.ResponseWriter, r *http.Request) {
	name := model.UserName(mux.Vars(r)["name"])

	games, err := h.gameController.ActiveGamesForUser(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	result := make([]response.Game, len(games))
	for i, g := range games {
		result[i] = response.GameFromModel(g, "")
	}
	response.JSON(w, http.StatusOK, result)
}
