package ranking

import (
	"context"
	"sort"

	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/storage"
)

// Service aggregates score records into the leaderboard
type Service struct {
	storage storage.Storage
}

// New creates a new RankingService
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// Leaderboard loads every score record and returns the ranked standings
func (s *Service) Leaderboard(ctx context.Context) ([]model.UserStats, error) {
	scores, err := s.storage.ListScores(ctx, storage.ScoreQuery{})
	if err != nil {
		return nil, err
	}
	return s.Rank(scores), nil
}

// Rank folds score records into per-user statistics and sorts them into the
// leaderboard order: win percentage descending, then wins descending, then
// total guesses ascending (fewer guesses ranks higher among equally
// successful players), then user name for a deterministic total order.
//
// Users with no score records never enter the aggregation, so win percentage
// is always well defined.
func (s *Service) Rank(scores []*model.Score) []model.UserStats {
	byUser := make(map[model.UserName]*model.UserStats)
	for _, score := range scores {
		st, ok := byUser[score.User]
		if !ok {
			st = &model.UserStats{User: score.User}
			byUser[score.User] = st
		}
		st.Games++
		st.TotalGuesses += score.Guesses
		if score.Won {
			st.Wins++
		}
	}

	stats := make([]model.UserStats, 0, len(byUser))
	for _, st := range byUser {
		st.WinPercentage = 100 * float64(st.Wins) / float64(st.Games)
		stats = append(stats, *st)
	}

	sort.Slice(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.WinPercentage != b.WinPercentage {
			return a.WinPercentage > b.WinPercentage
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.TotalGuesses != b.TotalGuesses {
			return a.TotalGuesses < b.TotalGuesses
		}
		return a.User < b.User
	})

	return stats
}

// Interface for dependency injection
type ServiceInterface interface {
	Leaderboard(ctx context.Context) ([]model.UserStats, error)
	Rank(scores []*model.Score) []model.UserStats
}

var _ ServiceInterface = (*Service)(nil)
