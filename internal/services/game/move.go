package game

import (
	"fmt"
	"strings"

	"github.com/mcoot/hangman-go/internal/model"
)

// Outcome messages for moves
const (
	msgWin           = "You win!"
	msgWrongWord     = "That's not the correct word!"
	msgSingleLetter  = "Please only enter a single letter."
	msgLettersOnly   = "Only letters are allowed as guesses!"
	msgCorrectLetter = "You guessed correctly!"
)

// moveOutcome describes the result of evaluating one guess
type moveOutcome struct {
	Message string

	// Accepted moves count one attempt and are logged to history;
	// rejected moves leave the game untouched
	Accepted bool

	// Terminal means this move ended the game and a score is due
	Terminal bool
}

// applyMove evaluates a single guess against a game, updating attempts,
// guessed letters, history and the terminal flags in place. It never touches
// storage; the caller persists the game and records the score. Must only be
// called on a game that is still in progress.
//
// Decision order: whole-word guesses are checked first (an exact match wins,
// a same-length miss burns an attempt without letter-level feedback, so a
// near-miss can't be mined for hints), then illegal guesses are rejected
// without mutation, then the letter is scored.
func applyMove(g *model.Game, rawGuess string) moveOutcome {
	guess := strings.ToLower(rawGuess)
	runes := []rune(guess)

	if guess == g.TargetWord {
		g.Attempts++
		g.GameOver = true
		g.Won = true
		return record(g, guess, moveOutcome{Message: msgWin, Accepted: true, Terminal: true})
	}

	if len(runes) == len(g.TargetWord) {
		g.Attempts++
		return record(g, guess, moveOutcome{Message: msgWrongWord, Accepted: true})
	}

	if len(runes) != 1 {
		return moveOutcome{Message: msgSingleLetter}
	}

	letter := runes[0]
	if g.HasGuessed(letter) {
		return moveOutcome{
			Message: fmt.Sprintf("You have already guessed %s! Please guess a new letter.", guess),
		}
	}

	if letter < 'a' || letter > 'z' {
		return moveOutcome{Message: msgLettersOnly}
	}

	g.Attempts++
	g.Guessed += guess

	if strings.ContainsRune(g.TargetWord, letter) {
		out := moveOutcome{Message: msgCorrectLetter, Accepted: true}
		if g.IsFullyRevealed() {
			// Revealing the last letter completes the game; the move is
			// still reported as a correct-letter guess
			g.GameOver = true
			g.Won = true
			out.Terminal = true
		}
		return record(g, guess, out)
	}

	incorrect := g.IncorrectGuesses()
	if incorrect >= model.MaxWrongLetters {
		g.GameOver = true
		return record(g, guess, moveOutcome{
			Message:  fmt.Sprintf("You lose! The word was %s", g.TargetWord),
			Accepted: true,
			Terminal: true,
		})
	}

	return record(g, guess, moveOutcome{
		Message: fmt.Sprintf(
			"Incorrect guess! Letter %s is not in the word. You are %d incorrect guess(es) from hangman.",
			guess, model.MaxWrongLetters-incorrect,
		),
		Accepted: true,
	})
}

// record appends an accepted move to the game's history
func record(g *model.Game, guess string, out moveOutcome) moveOutcome {
	g.History = append(g.History, model.HistoryEntry{Guess: guess, Message: out.Message})
	return out
}

// alreadyOverMessage is returned for any move or cancel against a
// terminal game
func alreadyOverMessage(g *model.Game) string {
	return fmt.Sprintf("Game already over! The word was %s", g.TargetWord)
}
