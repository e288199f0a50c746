package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dmesquita/olimpicos/internal/dependencies/clock"
	"github.com/dmesquita/olimpicos/internal/dependencies/random"
	"github.com/dmesquita/olimpicos/internal/dependencies/scheduler"
	"github.com/dmesquita/olimpicos/internal/services/board"
	"github.com/dmesquita/olimpicos/internal/services/game"
	"github.com/dmesquita/olimpicos/internal/services/question"
	"github.com/dmesquita/olimpicos/internal/services/session"
	"github.com/dmesquita/olimpicos/internal/storage"
	"github.com/dmesquita/olimpicos/internal/storage/memory"
	redisstorage "github.com/dmesquita/olimpicos/internal/storage/redis"
	"github.com/dmesquita/olimpicos/internal/web/sse"
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
	Clock     clock.Clock
	Random    random.Random
	Scheduler scheduler.Scheduler

	// Services
	BoardService    *board.Service
	QuestionService *question.Service
	GameController  *game.Controller
	SessionService  *session.Service
	HubManager      *sse.HubManager
	Broadcaster     *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// QuestionsPath is the path to the question catalogue file (optional)
	// If empty, questions must be loaded manually
	QuestionsPath string
	// SessionConfig holds configuration for the session service (optional)
	// If zero value, defaults to session.DefaultConfig()
	SessionConfig session.Config
	// GameConfig holds timing configuration for the game controller (optional)
	// If zero value, defaults to game.DefaultConfig()
	GameConfig game.Config
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
	sched := scheduler.New()

	sessionCfg := cfg.SessionConfig
	if sessionCfg.SessionDuration == 0 {
		sessionCfg = session.DefaultConfig()
	}

	gameCfg := cfg.GameConfig
	if gameCfg.RollTicks == 0 {
		gameCfg = game.DefaultConfig()
	}

	app := newWithDependencies(store, clk, rnd, sched, sessionCfg, gameCfg, logger)

	if cfg.QuestionsPath != "" {
		if err := app.QuestionService.LoadFromFile(context.Background(), cfg.QuestionsPath); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	sched scheduler.Scheduler,
	sessionCfg session.Config,
	gameCfg game.Config,
	logger *slog.Logger,
) *App {
	boardService := board.New()
	questionService := question.New(store)
	gameController := game.NewController(store, boardService, questionService, sched, clk, rnd, gameCfg, logger)
	sessionService := session.New(store, clk, sessionCfg)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, store, logger)

	// Every committed state change flows out through the broadcaster
	gameController.SetNotifier(broadcaster)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Scheduler:       sched,
		BoardService:    boardService,
		QuestionService: questionService,
		GameController:  gameController,
		SessionService:  sessionService,
		HubManager:      hubManager,
		Broadcaster:     broadcaster,
	}
}
