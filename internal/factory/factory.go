package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/hangman-go/internal/dependencies/clock"
	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/services/auth"
	"github.com/mcoot/hangman-go/internal/services/game"
	"github.com/mcoot/hangman-go/internal/services/ranking"
	"github.com/mcoot/hangman-go/internal/services/wordbank"
	"github.com/mcoot/hangman-go/internal/storage"
	"github.com/mcoot/hangman-go/internal/storage/memory"
	redisstorage "github.com/mcoot/hangman-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordBankService *wordbank.Service
	RankingService  *ranking.Service
	GameController  *game.Controller
	AuthService     *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// WordsPath is the path to the word list file (optional)
	// If empty, the word bank must be loaded manually
	WordsPath string
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	app := newWithDependencies(store, clk, rnd, authCfg, logger)

	if cfg.WordsPath != "" {
		if err := app.WordBankService.LoadFromFile(context.Background(), cfg.WordsPath); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	// Create services
	wordBankService := wordbank.New(store, rnd)
	rankingService := ranking.New(store)
	gameController := game.NewController(store, wordBankService, clk, rnd, logger)
	authService := auth.New(store, clk, authCfg)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		WordBankService: wordBankService,
		RankingService:  rankingService,
		GameController:  gameController,
		AuthService:     authService,
	}
}
