package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/hangman-go/internal/dependencies/clock"
	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/wordbank"
	"github.com/mcoot/hangman-go/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// cancelPenalty is added to a cancelled game's attempts before its losing
// score is recorded
const cancelPenalty = 3

// Controller manages the hangman game lifecycle: creation, moves,
// cancellation and score emission
type Controller struct {
	storage  storage.Storage
	wordBank *wordbank.Service
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	wordBank *wordbank.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		wordBank: wordBank,
		clock:    clock,
		random:   random,
		logger:   logger,
	}
}

// StartGame creates a new game for the user with a randomly selected
// target word
func (c *Controller) StartGame(ctx context.Context, user model.UserName) (*model.Game, error) {
	if _, err := c.storage.GetUser(ctx, user); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(c.random.String(12, gameIDAlphabet)),
		User:       user,
		TargetWord: c.wordBank.SelectWord(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(game.ID)),
		slog.String("user", string(user)),
		slog.Int("word_length", len(game.TargetWord)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// MakeMove applies a guess to a game and returns the updated game with an
// outcome message. Illegal guesses and moves against a finished game are not
// errors: the game is returned unchanged with an explanatory message.
// A move that ends the game records its score in the same call.
func (c *Controller) MakeMove(ctx context.Context, gameID model.GameID, rawGuess string) (*model.Game, string, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, "", err
	}

	if game.GameOver {
		return game, alreadyOverMessage(game), nil
	}

	outcome := applyMove(game, rawGuess)
	if !outcome.Accepted {
		// Rejected move: nothing changed, nothing to persist
		return game, outcome.Message, nil
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, "", err
	}

	if outcome.Terminal {
		if err := c.recordScore(ctx, game); err != nil {
			return nil, "", err
		}
		c.logger.Info("game finished",
			slog.String("game_id", string(game.ID)),
			slog.String("user", string(game.User)),
			slog.Bool("won", game.Won),
			slog.Int("attempts", game.Attempts),
		)
	}

	return game, outcome.Message, nil
}

// CancelGame force-terminates an in-progress game as a loss with a guess
// penalty, records its score, and discards the game record. Cancelling a
// finished game is an informational no-op.
func (c *Controller) CancelGame(ctx context.Context, gameID model.GameID) (string, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return "", err
	}

	if game.GameOver {
		return alreadyOverMessage(game), nil
	}

	game.Attempts += cancelPenalty
	game.GameOver = true
	game.Won = false
	game.UpdatedAt = c.clock.Now()

	if err := c.recordScore(ctx, game); err != nil {
		return "", err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return "", err
	}

	c.logger.Info("game cancelled",
		slog.String("game_id", string(gameID)),
		slog.String("user", string(game.User)),
		slog.Int("attempts", game.Attempts),
	)

	return fmt.Sprintf("Game cancelled. The word was %s", game.TargetWord), nil
}

// GetHistory returns the ordered move history for a game
func (c *Controller) GetHistory(ctx context.Context, gameID model.GameID) ([]model.HistoryEntry, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return game.History, nil
}

// ActiveGamesForUser returns the user's games that are still in progress
func (c *Controller) ActiveGamesForUser(ctx context.Context, user model.UserName) ([]*model.Game, error) {
	if _, err := c.storage.GetUser(ctx, user); err != nil {
		return nil, err
	}
	return c.storage.ListActiveGames(ctx, user)
}

// recordScore derives and saves the score for a terminated game
func (c *Controller) recordScore(ctx context.Context, game *model.Game) error {
	score := &model.Score{
		User:    game.User,
		Date:    c.clock.Now(),
		Won:     game.Won,
		Guesses: game.Attempts,
	}
	return c.storage.SaveScore(ctx, score)
}

// Interface for dependency injection
type ControllerInterface interface {
	StartGame(ctx context.Context, user model.UserName) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	MakeMove(ctx context.Context, gameID model.GameID, rawGuess string) (*model.Game, string, error)
	CancelGame(ctx context.Context, gameID model.GameID) (string, error)
	GetHistory(ctx context.Context, gameID model.GameID) ([]model.HistoryEntry, error)
	ActiveGamesForUser(ctx context.Context, user model.UserName) ([]*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
