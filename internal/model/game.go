package model

import (
	"strings"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// Placeholder is the character shown for unrevealed letters
const Placeholder = '*'

// MaxWrongLetters is the number of distinct incorrect letters a player may
// guess before losing; the next wrong letter ends the game.
const MaxWrongLetters = 6

// HistoryEntry is one accepted move and the outcome message it produced
type HistoryEntry struct {
	Guess   string
	Message string
}

// Game represents a single hangman game in progress or completed
type Game struct {
	ID   GameID
	User UserName

	// TargetWord is the secret word, chosen at creation and never mutated
	TargetWord string

	// Guessed holds the distinct single letters attempted so far, in the
	// order they were guessed
	Guessed string

	// Attempts counts accepted moves (letter or whole-word), correct or not
	Attempts int

	// GameOver transitions false->true exactly once
	GameOver bool
	Won      bool

	// History is the append-only log of accepted moves
	History []HistoryEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasGuessed reports whether the letter has already been attempted
func (g *Game) HasGuessed(letter rune) bool {
	return strings.ContainsRune(g.Guessed, letter)
}

// RevealedWord renders the player-visible word: each position is either the
// correct letter (if guessed) or the placeholder. Derived from Guessed so it
// can never disagree with the guess history.
func (g *Game) RevealedWord() string {
	var b strings.Builder
	b.Grow(len(g.TargetWord))
	for _, r := range g.TargetWord {
		if g.HasGuessed(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// IsFullyRevealed reports whether every letter of the target word has been
// guessed individually
func (g *Game) IsFullyRevealed() bool {
	for _, r := range g.TargetWord {
		if !g.HasGuessed(r) {
			return false
		}
	}
	return true
}

// IncorrectGuesses counts the guessed letters that are absent from the
// target word
func (g *Game) IncorrectGuesses() int {
	count := 0
	for _, r := range g.Guessed {
		if !strings.ContainsRune(g.TargetWord, r) {
			count++
		}
	}
	return count
}
