package memory

import (
	"context"
	"sync"

	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users       map[model.UserName]*model.User
	credentials map[model.UserName]*model.Credentials
	games       map[model.GameID]*model.Game
	scores      []*model.Score
	wordBank    []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:       make(map[model.UserName]*model.User),
		credentials: make(map[model.UserName]*model.Credentials),
		games:       make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Name] = user
	return nil
}

func (s *Storage) GetUser(ctx context.Context, name model.UserName) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[name]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Credential operations

func (s *Storage) SaveCredentials(ctx context.Context, creds *model.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[creds.Name] = creds
	return nil
}

func (s *Storage) GetCredentials(ctx context.Context, name model.UserName) (*model.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	creds, ok := s.credentials[name]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return creds, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

func (s *Storage) ListActiveGames(ctx context.Context, user model.UserName) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var games []*model.Game
	for _, game := range s.games {
		if game.User == user && !game.GameOver {
			games = append(games, game)
		}
	}
	return games, nil
}

// Score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, score)
	return nil
}

func (s *Storage) ListScores(ctx context.Context, query storage.ScoreQuery) ([]*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Score
	for _, score := range s.scores {
		if query.User != nil && score.User != *query.User {
			continue
		}
		if query.Won != nil && score.Won != *query.Won {
			continue
		}
		result = append(result, score)
	}

	if query.Newest {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}

	if query.Limit > 0 && len(result) > query.Limit {
		result = result[:query.Limit]
	}

	return result, nil
}

// Word bank operations

func (s *Storage) GetWordBank(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wordBank == nil {
		return nil, model.ErrWordBankNotLoaded
	}
	result := make([]string, len(s.wordBank))
	copy(result, s.wordBank)
	return result, nil
}

func (s *Storage) SaveWordBank(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordBank = make([]string, len(words))
	copy(s.wordBank, words)
	return nil
}
