package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case []HistoryEntry:
		o.printHistory(v)
	case []Score:
		o.printScores(v)
	case []Standing:
		o.printStandings(v)
	case MessageResult:
		fmt.Println(v.Message)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// Game response type
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

// HistoryEntry response type
type HistoryEntry struct {
	Guess   string `json:"guess"`
	Message string `json:"message"`
}

// Score response type
type Score struct {
	User    string    `json:"user"`
	Date    time.Time `json:"date"`
	Won     bool      `json:"won"`
	Guesses int       `json:"guesses"`
}

// Standing response type
type Standing struct {
	User          string  `json:"user"`
	Wins          int     `json:"wins"`
	Games         int     `json:"games"`
	TotalGuesses  int     `json:"total_guesses"`
	WinPercentage float64 `json:"win_percentage"`
}

// MessageResult response type
type MessageResult struct {
	Message string `json:"message"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s\n", u.Name)
	if u.Email != "" {
		fmt.Printf("Email: %s\n", u.Email)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Word: %s\n", spaced(g.WordSoFar))
	if g.GuessedLetters != "" {
		fmt.Printf("Guessed: %s\n", spaced(g.GuessedLetters))
	}
	fmt.Printf("Attempts: %d\n", g.Attempts)
	if g.GameOver {
		outcome := "lost"
		if g.Won {
			outcome = "won"
		}
		fmt.Printf("Result: %s (the word was %s)\n", outcome, g.TargetWord)
	}
	if g.Message != "" {
		fmt.Printf("\n%s\n", g.Message)
	}
}

func (o *Output) printGames(games []Game) {
	if len(games) == 0 {
		fmt.Println("No active games")
		return
	}
	fmt.Printf("Active games (%d):\n", len(games))
	for _, g := range games {
		fmt.Printf("  %s  %s  (%d attempts)\n", g.ID, spaced(g.WordSoFar), g.Attempts)
	}
}

func (o *Output) printHistory(history []HistoryEntry) {
	if len(history) == 0 {
		fmt.Println("No moves yet")
		return
	}
	for i, h := range history {
		fmt.Printf("%2d. %-10s %s\n", i+1, h.Guess, h.Message)
	}
}

func (o *Output) printScores(scores []Score) {
	if len(scores) == 0 {
		fmt.Println("No scores recorded")
		return
	}
	for _, s := range scores {
		outcome := "loss"
		if s.Won {
			outcome = "win"
		}
		fmt.Printf("%s  %-4s  %d guesses  (%s)\n",
			s.Date.Format("2006-01-02"), outcome, s.Guesses, s.User)
	}
}

func (o *Output) printStandings(standings []Standing) {
	if len(standings) == 0 {
		fmt.Println("No rankings yet")
		return
	}
	fmt.Printf("%-4s %-20s %6s %6s %8s %8s\n", "#", "User", "Wins", "Games", "Win %", "Guesses")
	for i, s := range standings {
		fmt.Printf("%-4d %-20s %6d %6d %7.1f%% %8d\n",
			i+1, s.User, s.Wins, s.Games, s.WinPercentage, s.TotalGuesses)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

// spaced puts a space between each character so revealed words and
// guessed letters read like a hangman board.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
