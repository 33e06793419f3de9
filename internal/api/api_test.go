package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/hangman-go/internal/api"
	"github.com/mcoot/hangman-go/internal/api/response"
	"github.com/mcoot/hangman-go/internal/factory"
)

// testServer wires the API router against a test app with mocked
// clock and random, so games get deterministic IDs and words
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestWords())

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		GameController: app.GameController,
		RankingService: app.RankingService,
		Storage:        app.Storage,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// registerUser registers a user and returns their session token
func registerUser(t *testing.T, ts *testServer, name string) string {
	t.Helper()

	body := map[string]string{"name": name, "password": "secret123"}
	rr := ts.request(http.MethodPost, "/api/v1/users/register", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.SessionToken
}

// startGame starts a game with a known ID and the word at the given index
func startGame(t *testing.T, ts *testServer, token, gameID string, wordIdx int) response.Game {
	t.Helper()

	ts.app.MockRandom.QueueString(gameID)
	ts.app.MockRandom.QueueIntn(wordIdx)

	rr := ts.request(http.MethodPost, "/api/v1/games", nil, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	// Register
	registerBody := map[string]string{
		"name":     "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}
	rr := ts.request(http.MethodPost, "/api/v1/users/register", registerBody, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var registerResp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &registerResp))
	assert.Equal(t, "alice", registerResp.User.Name)
	assert.NotEmpty(t, registerResp.SessionToken)

	// Login
	loginBody := map[string]string{"name": "alice", "password": "secret123"}
	rr = ts.request(http.MethodPost, "/api/v1/users/login", loginBody, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	assert.Equal(t, "alice", loginResp.User.Name)
}

func TestRegisterDuplicateName(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "alice")

	body := map[string]string{"name": "alice", "password": "other456"}
	rr := ts.request(http.MethodPost, "/api/v1/users/register", body, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "USER_EXISTS")
}

func TestRegisterMissingFields(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/users/register", map[string]string{"name": "alice"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/users/register", map[string]string{"password": "secret123"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "alice")

	body := map[string]string{"name": "alice", "password": "wrong"}
	rr := ts.request(http.MethodPost, "/api/v1/users/login", body, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "bob")

	rr := ts.request(http.MethodGet, "/api/v1/users/me", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var meResp response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &meResp))
	assert.Equal(t, "bob", meResp.Name)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/users/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/games", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestStartGame(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	// Word index 0 is "cat"
	game := startGame(t, ts, token, "GAME12345678", 0)

	assert.Equal(t, "GAME12345678", game.ID)
	assert.Equal(t, "alice", game.User)
	assert.Equal(t, 3, game.WordLength)
	assert.Equal(t, "***", game.WordSoFar)
	assert.Empty(t, game.TargetWord) // Never leaked while in progress
	assert.Contains(t, game.Message, "Good luck playing Hangman!")
}

func TestPlayGameToWin(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")
	game := startGame(t, ts, token, "GAME12345678", 0) // "cat"

	guess := func(g string) response.Game {
		rr := ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/guess", map[string]string{"guess": g}, token)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp response.Game
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp
	}

	resp := guess("c")
	assert.Equal(t, "You guessed correctly!", resp.Message)
	assert.Equal(t, "c**", resp.WordSoFar)
	assert.False(t, resp.GameOver)

	resp = guess("x")
	assert.Contains(t, resp.Message, "Incorrect guess!")

	resp = guess("a")
	resp = guess("t")
	assert.True(t, resp.GameOver)
	assert.True(t, resp.Won)
	assert.Equal(t, "cat", resp.WordSoFar)
	assert.Equal(t, "cat", resp.TargetWord) // Revealed once the game is over
	assert.Equal(t, 4, resp.Attempts)
}

func TestGuessValidation(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")
	game := startGame(t, ts, token, "GAME12345678", 0)

	// Empty guess is a bad request
	rr := ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/guess", map[string]string{}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Illegal guesses are accepted by the API but rejected by the game
	rr = ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/guess", map[string]string{"guess": "42"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Please only enter a single letter.", resp.Message)
	assert.Equal(t, 0, resp.Attempts)
}

func TestGetGame(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")
	game := startGame(t, ts, token, "GAME12345678", 0)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+game.ID, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, game.ID, resp.ID)
	assert.Equal(t, "Time to make a move!", resp.Message)
}

func TestGetGameNotFound(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	rr := ts.request(http.MethodGet, "/api/v1/games/NOSUCHGAME12", nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestCancelGame(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")
	game := startGame(t, ts, token, "GAME12345678", 0)

	rr := ts.request(http.MethodDelete, "/api/v1/games/"+game.ID, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Game cancelled. The word was cat")

	// Cancelled games are gone
	rr = ts.request(http.MethodGet, "/api/v1/games/"+game.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// But their losing score remains
	rr = ts.request(http.MethodGet, "/api/v1/users/alice/scores", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var scores []response.Score
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &scores))
	require.Len(t, scores, 1)
	assert.False(t, scores[0].Won)
	assert.Equal(t, 3, scores[0].Guesses) // Penalty only, no moves made
}

func TestGameHistory(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")
	game := startGame(t, ts, token, "GAME12345678", 0)

	_ = ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/guess", map[string]string{"guess": "x"}, token)
	_ = ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/guess", map[string]string{"guess": "c"}, token)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+game.ID+"/history", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var history []response.HistoryEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "x", history[0].Guess)
	assert.Equal(t, "c", history[1].Guess)
}

func TestUserGames(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")
	game := startGame(t, ts, token, "GAME12345678", 0)

	// Win a second game so it drops off the active list
	finished := startGame(t, ts, token, "GAME87654321", 1) // "dog"
	rr := ts.request(http.MethodPost, "/api/v1/games/"+finished.ID+"/guess", map[string]string{"guess": "dog"}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/users/alice/games", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var games []response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, game.ID, games[0].ID)
}

func TestScoresAndLeaderboard(t *testing.T) {
	ts := newTestServer(t)
	aliceToken := registerUser(t, ts, "alice")
	bobToken := registerUser(t, ts, "bob")

	// Alice wins a game, bob cancels one
	game := startGame(t, ts, aliceToken, "GAMEALICE001", 0)
	rr := ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/guess", map[string]string{"guess": "cat"}, aliceToken)
	require.Equal(t, http.StatusOK, rr.Code)

	game = startGame(t, ts, bobToken, "GAMEBOB00001", 1)
	rr = ts.request(http.MethodDelete, "/api/v1/games/"+game.ID, nil, bobToken)
	require.Equal(t, http.StatusOK, rr.Code)

	// Score listing is public and filterable
	rr = ts.request(http.MethodGet, "/api/v1/scores", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	var scores []response.Score
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &scores))
	assert.Len(t, scores, 2)

	rr = ts.request(http.MethodGet, "/api/v1/scores?won=true", nil, "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &scores))
	require.Len(t, scores, 1)
	assert.Equal(t, "alice", scores[0].User)

	// Leaderboard ranks alice (100%) above bob (0%)
	rr = ts.request(http.MethodGet, "/api/v1/leaderboard", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var standings []response.Standing
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &standings))
	require.Len(t, standings, 2)
	assert.Equal(t, "alice", standings[0].User)
	assert.Equal(t, "bob", standings[1].User)
}

func TestUserScoresUnknownUser(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/users/nobody/scores", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "USER_NOT_FOUND")
}

func TestScoreQueryValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/scores?won=maybe", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/scores?limit=-1", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
