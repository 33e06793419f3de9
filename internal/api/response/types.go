package response

import (
	"time"

	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/auth"
)

// User represents a user in API responses
type User struct {
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		Name:      string(u.Name),
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(&s.User),
		SessionToken: s.Token,
	}
}

// Game represents a game's player-visible state. The target word is only
// included once the game is over.
type Game struct {
	ID             string `json:"id"`
	User           string `json:"user"`
	WordLength     int    `json:"word_length"`
	WordSoFar      string `json:"word_so_far"`
	GuessedLetters string `json:"guessed_letters"`
	Attempts       int    `json:"attempts"`
	GameOver       bool   `json:"game_over"`
	Won            bool   `json:"won"`
	TargetWord     string `json:"target_word,omitempty"`
	Message        string `json:"message,omitempty"`
}

// GameFromModel converts model.Game to a response Game with an
// outcome message
func GameFromModel(g *model.Game, message string) Game {
	resp := Game{
		ID:             string(g.ID),
		User:           string(g.User),
		WordLength:     len(g.TargetWord),
		WordSoFar:      g.RevealedWord(),
		GuessedLetters: g.Guessed,
		Attempts:       g.Attempts,
		GameOver:       g.GameOver,
		Won:            g.Won,
		Message:        message,
	}
	if g.GameOver {
		resp.TargetWord = g.TargetWord
	}
	return resp
}

// HistoryEntry represents one accepted move
type HistoryEntry struct {
	Guess   string `json:"guess"`
	Message string `json:"message"`
}

// HistoryFromModel converts a game's move history
func HistoryFromModel(history []model.HistoryEntry) []HistoryEntry {
	entries := make([]HistoryEntry, len(history))
	for i, h := range history {
		entries[i] = HistoryEntry{Guess: h.Guess, Message: h.Message}
	}
	return entries
}

// Score represents a recorded game outcome
type Score struct {
	User    string    `json:"user"`
	Date    time.Time `json:"date"`
	Won     bool      `json:"won"`
	Guesses int       `json:"guesses"`
}

// ScoreFromModel converts model.Score
func ScoreFromModel(s *model.Score) Score {
	return Score{
		User:    string(s.User),
		Date:    s.Date,
		Won:     s.Won,
		Guesses: s.Guesses,
	}
}

// ScoresFromModel converts a list of scores
func ScoresFromModel(scores []*model.Score) []Score {
	result := make([]Score, len(scores))
	for i, s := range scores {
		result[i] = ScoreFromModel(s)
	}
	return result
}

// Standing is one leaderboard entry
type Standing struct {
	User          string  `json:"user"`
	Wins          int     `json:"wins"`
	Games         int     `json:"games"`
	TotalGuesses  int     `json:"total_guesses"`
	WinPercentage float64 `json:"win_percentage"`
}

// StandingsFromModel converts ranked user stats
func StandingsFromModel(stats []model.UserStats) []Standing {
	standings := make([]Standing, len(stats))
	for i, st := range stats {
		standings[i] = Standing{
			User:          string(st.User),
			Wins:          st.Wins,
			Games:         st.Games,
			TotalGuesses:  st.TotalGuesses,
			WinPercentage: st.WinPercentage,
		}
	}
	return standings
}

// Message is a simple informational response
type Message struct {
	Message string `json:"message"`
}
