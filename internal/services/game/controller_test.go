package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangman-go/internal/dependencies/mocks"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/wordbank"
	"github.com/mcoot/hangman-go/internal/storage"
	"github.com/mcoot/hangman-go/internal/storage/memory"
	"github.com/mcoot/hangman-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	wordBank   *wordbank.Service
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.wordBank = wordbank.New(s.storage, s.random)
	s.controller = NewController(s.storage, s.wordBank, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()

	s.Require().NoError(s.wordBank.LoadWords([]string{"cat", "dog", "horse"}))

	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{
		Name:      "alice",
		CreatedAt: s.clock.Now(),
	}))
}

// startGame starts a game for alice with the word at the given bank index
func (s *ControllerSuite) startGame(wordIdx int) *model.Game {
	s.random.QueueString("GAME12345678")
	s.random.QueueIntn(wordIdx)
	game, err := s.controller.StartGame(s.ctx, "alice")
	s.Require().NoError(err)
	return game
}

// StartGame tests

func (s *ControllerSuite) TestStartGameSucceeds() {
	game := s.startGame(0)

	s.Equal(model.GameID("GAME12345678"), game.ID)
	s.Equal(model.UserName("alice"), game.User)
	s.Equal("cat", game.TargetWord)
	s.Equal(0, game.Attempts)
	s.False(game.GameOver)
	s.Equal(s.clock.Now(), game.CreatedAt)
}

func (s *ControllerSuite) TestStartGameIsPersisted() {
	game := s.startGame(0)

	retrieved, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.TargetWord, retrieved.TargetWord)
}

func (s *ControllerSuite) TestStartGameFailsForUnknownUser() {
	_, err := s.controller.StartGame(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// MakeMove tests

func (s *ControllerSuite) TestMakeMovePersistsAcceptedMoves() {
	game := s.startGame(0)

	s.clock.Advance(time.Minute)
	_, _, err := s.controller.MakeMove(s.ctx, game.ID, "c")
	s.Require().NoError(err)

	retrieved, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(1, retrieved.Attempts)
	s.Equal("c", retrieved.Guessed)
	s.Equal(s.clock.Now(), retrieved.UpdatedAt)
}

func (s *ControllerSuite) TestMakeMoveDoesNotPersistRejectedMoves() {
	game := s.startGame(0)

	_, msg, err := s.controller.MakeMove(s.ctx, game.ID, "too long")
	s.Require().NoError(err)
	s.Equal("Please only enter a single letter.", msg)

	retrieved, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(0, retrieved.Attempts)
	s.Empty(retrieved.History)
}

func (s *ControllerSuite) TestWinningMoveRecordsScore() {
	game := s.startGame(0)

	_, msg, err := s.controller.MakeMove(s.ctx, game.ID, "cat")
	s.Require().NoError(err)
	s.Equal("You win!", msg)

	scores, err := s.storage.ListScores(s.ctx, storage.ScoreQuery{})
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(model.UserName("alice"), scores[0].User)
	s.True(scores[0].Won)
	s.Equal(1, scores[0].Guesses)
	s.Equal(s.clock.Now(), scores[0].Date)
}

func (s *ControllerSuite) TestLosingMoveRecordsScore() {
	game := s.startGame(0)

	for _, letter := range []string{"b", "d", "e", "f", "g", "h"} {
		_, _, err := s.controller.MakeMove(s.ctx, game.ID, letter)
		s.Require().NoError(err)
	}

	scores, err := s.storage.ListScores(s.ctx, storage.ScoreQuery{})
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.False(scores[0].Won)
	s.Equal(6, scores[0].Guesses)
}

func (s *ControllerSuite) TestMoveAgainstFinishedGameLeavesItUntouched() {
	game := s.startGame(0)

	_, _, err := s.controller.MakeMove(s.ctx, game.ID, "cat")
	s.Require().NoError(err)

	updated, msg, err := s.controller.MakeMove(s.ctx, game.ID, "z")
	s.Require().NoError(err)
	s.Equal("Game already over! The word was cat", msg)
	s.Equal(1, updated.Attempts)

	// No extra score recorded
	scores, err := s.storage.ListScores(s.ctx, storage.ScoreQuery{})
	s.Require().NoError(err)
	s.Len(scores, 1)
}

func (s *ControllerSuite) TestMakeMoveFailsForUnknownGame() {
	_, _, err := s.controller.MakeMove(s.ctx, "NOSUCHGAME12", "a")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// CancelGame tests

func (s *ControllerSuite) TestCancelGameRecordsPenalisedLoss() {
	game := s.startGame(0)

	_, _, err := s.controller.MakeMove(s.ctx, game.ID, "c")
	s.Require().NoError(err)
	_, _, err = s.controller.MakeMove(s.ctx, game.ID, "x")
	s.Require().NoError(err)

	msg, err := s.controller.CancelGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("Game cancelled. The word was cat", msg)

	scores, err := s.storage.ListScores(s.ctx, storage.ScoreQuery{})
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.False(scores[0].Won)
	s.Equal(5, scores[0].Guesses)
}

func (s *ControllerSuite) TestCancelGameDeletesTheGame() {
	game := s.startGame(0)

	_, err := s.controller.CancelGame(s.ctx, game.ID)
	s.Require().NoError(err)

	_, err = s.controller.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestCancelFinishedGameIsNoOp() {
	game := s.startGame(0)

	_, _, err := s.controller.MakeMove(s.ctx, game.ID, "cat")
	s.Require().NoError(err)

	msg, err := s.controller.CancelGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("Game already over! The word was cat", msg)

	scores, err := s.storage.ListScores(s.ctx, storage.ScoreQuery{})
	s.Require().NoError(err)
	s.Len(scores, 1)
}

func (s *ControllerSuite) TestCancelGameFailsForUnknownGame() {
	_, err := s.controller.CancelGame(s.ctx, "NOSUCHGAME12")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// GetHistory tests

func (s *ControllerSuite) TestGetHistoryReturnsMovesInOrder() {
	game := s.startGame(0)

	_, _, _ = s.controller.MakeMove(s.ctx, game.ID, "x")
	_, _, _ = s.controller.MakeMove(s.ctx, game.ID, "c")

	history, err := s.controller.GetHistory(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal("x", history[0].Guess)
	s.Equal("c", history[1].Guess)
}

// ActiveGamesForUser tests

func (s *ControllerSuite) TestActiveGamesExcludesFinishedGames() {
	active := s.startGame(0)

	s.random.QueueString("GAME87654321")
	s.random.QueueIntn(1)
	finished, err := s.controller.StartGame(s.ctx, "alice")
	s.Require().NoError(err)
	_, _, err = s.controller.MakeMove(s.ctx, finished.ID, "dog")
	s.Require().NoError(err)

	games, err := s.controller.ActiveGamesForUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(active.ID, games[0].ID)
}

func (s *ControllerSuite) TestActiveGamesFailsForUnknownUser() {
	_, err := s.controller.ActiveGamesForUser(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}
