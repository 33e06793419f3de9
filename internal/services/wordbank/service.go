package wordbank

import (
	"bufio"
	"context"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/storage"
)

// Service provides the bank of candidate target words.
// Words are lowercase alphabetic; a compiled-in default list is used until
// another source is loaded.
type Service struct {
	storage storage.Storage
	random  random.Random

	mu    sync.RWMutex
	words []string
}

// New creates a WordBank service seeded with the default word list
func New(storage storage.Storage, random random.Random) *Service {
	return &Service{
		storage: storage,
		random:  random,
		words:   defaultWords,
	}
}

// SelectWord picks a target word uniformly at random
func (s *Service) SelectWord() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words[s.random.Intn(len(s.words))]
}

// WordCount returns the number of words in the bank
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// LoadFromStorage replaces the word bank with the list held in storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetWordBank(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile replaces the word bank from a file (one word per line) and
// saves the list to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.storage.SaveWordBank(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadWords directly replaces the word bank (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	if len(words) == 0 {
		return model.ErrWordBankNotLoaded
	}

	normalized := make([]string, 0, len(words))
	for _, word := range words {
		// Target words are lowercase so guesses compare directly
		normalized = append(normalized, strings.ToLower(word))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = normalized
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	SelectWord() string
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
