package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/hangman-go/internal/api/response"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/ranking"
	"github.com/mcoot/hangman-go/internal/storage"
)

// ScoreHandler handles score and leaderboard endpoints
type ScoreHandler struct {
	storage        storage.Storage
	rankingService *ranking.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(storage storage.Storage, rankingService *ranking.Service) *ScoreHandler {
	return &ScoreHandler{
		storage:        storage,
		rankingService: rankingService,
	}
}

// List handles GET /api/v1/scores
// Supports ?won=true|false, ?newest=true and ?limit=N query parameters.
func (h *ScoreHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := scoreQueryFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	scores, err := h.storage.ListScores(r.Context(), query)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoresFromModel(scores))
}

// UserScores handles GET /api/v1/users/{name}/scores
func (h *ScoreHandler) UserScores(w http.ResponseWriter, r *http.Request) {
	name := model.UserName(mux.Vars(r)["name"])

	if _, err := h.storage.GetUser(r.Context(), name); err != nil {
		WriteError(w, err)
		return
	}

	query, err := scoreQueryFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	query.User = &name

	scores, err := h.storage.ListScores(r.Context(), query)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoresFromModel(scores))
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *ScoreHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	standings, err := h.rankingService.Leaderboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StandingsFromModel(standings))
}

// scoreQueryFromRequest parses the common score filter query parameters
func scoreQueryFromRequest(r *http.Request) (storage.ScoreQuery, error) {
	var query storage.ScoreQuery

	if raw := r.URL.Query().Get("won"); raw != "" {
		won, err := strconv.ParseBool(raw)
		if err != nil {
			return query, NewInvalidRequestError("won must be true or false")
		}
		query.Won = &won
	}

	if raw := r.URL.Query().Get("newest"); raw != "" {
		newest, err := strconv.ParseBool(raw)
		if err != nil {
			return query, NewInvalidRequestError("newest must be true or false")
		}
		query.Newest = newest
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return query, NewInvalidRequestError("limit must be a non-negative integer")
		}
		query.Limit = limit
	}

	return query, nil
}
