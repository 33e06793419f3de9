package storage

import (
	"context"

	"github.com/mcoot/hangman-go/internal/model"
)

// ScoreQuery filters and bounds a score listing. The zero value lists every
// score in recording order.
type ScoreQuery struct {
	// User restricts results to one user's scores
	User *model.UserName

	// Won restricts results to wins (true) or losses (false)
	Won *bool

	// Newest returns results newest-first instead of recording order
	Newest bool

	// Limit caps the number of results; 0 means no limit
	Limit int
}

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, name model.UserName) (*model.User, error)

	// Credential operations
	SaveCredentials(ctx context.Context, creds *model.Credentials) error
	GetCredentials(ctx context.Context, name model.UserName) (*model.Credentials, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListActiveGames(ctx context.Context, user model.UserName) ([]*model.Game, error)

	// Score operations
	SaveScore(ctx context.Context, score *model.Score) error
	ListScores(ctx context.Context, query ScoreQuery) ([]*model.Score, error)

	// Word bank operations
	GetWordBank(ctx context.Context) ([]string, error)
	SaveWordBank(ctx context.Context, words []string) error
}
