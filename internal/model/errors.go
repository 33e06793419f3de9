package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("a user with that name already exists")

	// Game errors
	ErrGameNotFound = errors.New("game not found")

	// Word bank errors
	ErrWordBankNotLoaded = errors.New("word bank not loaded")
)
