package factory

import (
	"time"

	"github.com/mcoot/hangman-go/internal/dependencies/mocks"
	"github.com/mcoot/hangman-go/internal/services/auth"
	"github.com/mcoot/hangman-go/internal/storage/memory"
	"github.com/mcoot/hangman-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWords loads a small word bank for testing
func (t *TestApp) LoadTestWords() error {
	words := []string{
		"cat", "dog", "fish", "bird", "horse",
		"apple", "grape", "lemon", "mango", "peach",
		"planet", "rocket", "bridge", "castle", "forest",
	}
	return t.WordBankService.LoadWords(words)
}
