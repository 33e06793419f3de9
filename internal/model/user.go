package model

import "time"

// UserName uniquely identifies a user across the system.
// Names are case-sensitive.
type UserName string

// User represents a registered player
type User struct {
	Name      UserName
	Email     string // optional
	CreatedAt time.Time
}

// Credentials holds a user's authentication data.
// Stored separately so the password hash never travels with the profile.
type Credentials struct {
	Name         UserName
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
