package model

import "time"

// Score is the immutable record of one terminated game
type Score struct {
	User    UserName
	Date    time.Time
	Won     bool
	Guesses int
}

// UserStats is a user's aggregated leaderboard entry
type UserStats struct {
	User          UserName
	Wins          int
	Games         int
	TotalGuesses  int
	WinPercentage float64
}
