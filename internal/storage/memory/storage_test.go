package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		Name:      "alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.Name, retrieved.Name)
	s.Equal(user.Email, retrieved.Email)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Credential tests

func (s *StorageSuite) TestSaveAndGetCredentials() {
	creds := &model.Credentials{
		Name:         "alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveCredentials(s.ctx, creds)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCredentials(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(creds.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetCredentialsNotFound() {
	_, err := s.storage.GetCredentials(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:         "game-1",
		User:       "alice",
		TargetWord: "cat",
		Guessed:    "ca",
		Attempts:   2,
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.TargetWord, retrieved.TargetWord)
	s.Equal(game.Guessed, retrieved.Guessed)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	game := &model.Game{ID: "game-1", User: "alice", TargetWord: "cat"}
	_ = s.storage.SaveGame(s.ctx, game)

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListActiveGames() {
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-1", User: "alice", TargetWord: "cat"})
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-2", User: "alice", TargetWord: "dog", GameOver: true})
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-3", User: "bob", TargetWord: "horse"})

	games, err := s.storage.ListActiveGames(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(model.GameID("game-1"), games[0].ID)
}

// Score tests

func (s *StorageSuite) saveScores() {
	scores := []*model.Score{
		{User: "alice", Won: true, Guesses: 4, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{User: "bob", Won: false, Guesses: 6, Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{User: "alice", Won: false, Guesses: 8, Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, score := range scores {
		s.Require().NoError(s.storage.SaveScore(s.ctx, score))
	}
}

func (s *StorageSuite) TestListScoresReturnsAllInRecordingOrder() {
	s.saveScores()

	scores, err := s.storage.ListScores(s.ctx, storage.ScoreQuery{})
	s.Require().NoError(err)
	s.Require().Len(scores, 3)
	s.Equal(model.UserName("alice"), scores[0].User)
	s.Equal(model.UserName("bob"), scores[1].User)
}

func (s *StorageSuite) TestListScoresFiltersByUser() {
	s.saveScores()

	user := model.UserName("alice")
	scores, err := s.storage.ListScores(s.ctx, storage.ScoreQuery{User: &user})
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	for _, score := range scores {
		s.Equal(user, score.User)
	}
}

func (s *StorageSuite) TestListScoresFiltersByOutcome() {
	s.saveScores()

	won := true
	scores, err := s.storage.ListScores(s.ctx, storage.ScoreQuery{Won: &won})
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.True(scores[0].Won)
}

func (s *StorageSuite) TestListScoresNewestFirst() {
	s.saveScores()

	scores, err := s.storage.ListScores(s.ctx, storage.ScoreQuery{Newest: true})
	s.Require().NoError(err)
	s.Require().Len(scores, 3)
	s.Equal(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), scores[0].Date)
}

func (s *StorageSuite) TestListScoresAppliesLimit() {
	s.saveScores()

	scores, err := s.storage.ListScores(s.ctx, storage.ScoreQuery{Newest: true, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	s.Equal(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), scores[0].Date)
}

// Word bank tests

func (s *StorageSuite) TestSaveAndGetWordBank() {
	words := []string{"apple", "banana", "cherry"}

	err := s.storage.SaveWordBank(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetWordBank(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetWordBankNotLoaded() {
	_, err := s.storage.GetWordBank(s.ctx)
	s.ErrorIs(err, model.ErrWordBankNotLoaded)
}
