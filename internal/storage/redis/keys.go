package redis

import (
	"fmt"

	"github.com/dmesquita/olimpicos/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "olimpicos"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// questionsKey returns the Redis key for the question catalogue
func questionsKey() string {
	return fmt.Sprintf("%s:questions", keyPrefix)
}

// preferenceKey returns the Redis key for a stored preference
func preferenceKey(key string) string {
	return fmt.Sprintf("%s:pref:%s", keyPrefix, key)
}
