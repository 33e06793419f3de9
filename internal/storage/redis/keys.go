package redis

import (
	"fmt"

	"github.com/mcoot/hangman-go/internal/model"
)

// Key prefix for all hangman data
const keyPrefix = "hangman"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(name model.UserName) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, name)
}

// credentialsKey returns the Redis key for a user's Credentials
func credentialsKey(name model.UserName) string {
	return fmt.Sprintf("%s:credentials:%s", keyPrefix, name)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesForUserIndexKey returns the Redis key for the SET of a user's game IDs
func gamesForUserIndexKey(name model.UserName) string {
	return fmt.Sprintf("%s:idx:games_for_user:%s", keyPrefix, name)
}

// scoresKey returns the Redis key for the LIST of all scores in
// recording order
func scoresKey() string {
	return fmt.Sprintf("%s:scores", keyPrefix)
}

// scoresForUserKey returns the Redis key for the LIST of one user's scores
func scoresForUserKey(name model.UserName) string {
	return fmt.Sprintf("%s:scores_for_user:%s", keyPrefix, name)
}

// wordBankKey returns the Redis key for the word bank LIST
func wordBankKey() string {
	return fmt.Sprintf("%s:wordbank", keyPrefix)
}
