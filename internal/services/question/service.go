package question

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/dmesquita/olimpicos/internal/dependencies/random"
	"github.com/dmesquita/olimpicos/internal/model"
	"github.com/dmesquita/olimpicos/internal/storage"
)

// Service provides the trivia question catalogue
type Service struct {
	storage storage.Storage

	mu       sync.RWMutex
	byTheme  map[model.Theme]map[model.Difficulty][]model.Question
	anyTheme map[model.Theme][]model.Question
	loaded   bool
}

// New creates a new QuestionService
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// LoadFromStorage loads the question catalogue from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	questions, err := s.storage.GetQuestions(ctx)
	if err != nil {
		return err
	}
	return s.loadQuestions(questions)
}

// LoadFromFile loads the question catalogue from a JSON file
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveQuestions(ctx, questions); err != nil {
		return err
	}

	return s.loadQuestions(questions)
}

// LoadQuestions directly loads a slice of questions (useful for testing)
func (s *Service) LoadQuestions(questions []model.Question) error {
	return s.loadQuestions(questions)
}

func (s *Service) loadQuestions(questions []model.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byTheme = make(map[model.Theme]map[model.Difficulty][]model.Question)
	s.anyTheme = make(map[model.Theme][]model.Question)
	for _, q := range questions {
		if s.byTheme[q.Theme] == nil {
			s.byTheme[q.Theme] = make(map[model.Difficulty][]model.Question)
		}
		s.byTheme[q.Theme][q.Difficulty] = append(s.byTheme[q.Theme][q.Difficulty], q)
		s.anyTheme[q.Theme] = append(s.anyTheme[q.Theme], q)
	}
	s.loaded = true
	return nil
}

// Loaded reports whether a catalogue has been loaded
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Pick selects a random question for the theme at the requested difficulty.
// When the theme has no question at that difficulty it falls back to any
// difficulty of the same theme. Returns ErrQuestionsNotLoaded when the theme
// has no questions at all.
func (s *Service) Pick(rnd random.Random, theme model.Theme, difficulty model.Difficulty) (model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return model.Question{}, model.ErrQuestionsNotLoaded
	}

	pool := s.byTheme[theme][difficulty]
	if len(pool) == 0 {
		pool = s.anyTheme[theme]
	}
	if len(pool) == 0 {
		return model.Question{}, model.ErrQuestionsNotLoaded
	}
	return pool[rnd.Intn(len(pool))], nil
}

// DifficultyFor maps a player's artifact count to a question difficulty.
// Questions get harder as the collection grows.
func DifficultyFor(artifactCount int) model.Difficulty {
	switch {
	case artifactCount <= 2:
		return model.DifficultyEasy
	case artifactCount <= 5:
		return model.DifficultyMedium
	default:
		return model.DifficultyHard
	}
}

// TimeLimit returns how long a player has to answer at the given difficulty
func TimeLimit(difficulty model.Difficulty) time.Duration {
	switch difficulty {
	case model.DifficultyEasy:
		return 30 * time.Second
	case model.DifficultyMedium:
		return 20 * time.Second
	case model.DifficultyHard:
		return 15 * time.Second
	default:
		return 30 * time.Second
	}
}

// Interface for dependency injection
type QuestionService interface {
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadQuestions(questions []model.Question) error
	Loaded() bool
	Pick(rnd random.Random, theme model.Theme, difficulty model.Difficulty) (model.Question, error)
}

var _ QuestionService = (*Service)(nil)
