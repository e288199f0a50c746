package storage

import (
	"context"

	"github.com/dmesquita/olimpicos/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Question catalogue operations
	SaveQuestions(ctx context.Context, questions []model.Question) error
	GetQuestions(ctx context.Context) ([]model.Question, error)

	// Preference operations (only the locale preference survives reloads)
	SavePreference(ctx context.Context, key, value string) error
	GetPreference(ctx context.Context, key string) (string, error)
	DeletePreference(ctx context.Context, key string) error
}
