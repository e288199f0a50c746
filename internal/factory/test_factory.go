package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/dmesquita/olimpicos/internal/dependencies/mocks"
	"github.com/dmesquita/olimpicos/internal/model"
	"github.com/dmesquita/olimpicos/internal/services/game"
	"github.com/dmesquita/olimpicos/internal/services/session"
	"github.com/dmesquita/olimpicos/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
	MockScheduler *mocks.MockScheduler
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockScheduler := mocks.NewMockScheduler()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, mockScheduler,
		session.DefaultConfig(), game.DefaultConfig(), logger)

	return &TestApp{
		App:           app,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
		MockScheduler: mockScheduler,
	}
}

// LoadTestQuestions loads a small catalogue with one easy question per theme
func (t *TestApp) LoadTestQuestions() error {
	questions := make([]model.Question, 0, len(model.Themes))
	for i, theme := range model.Themes {
		questions = append(questions, model.Question{
			ID:         i + 1,
			Theme:      theme,
			Difficulty: model.DifficultyEasy,
			Prompt:     "Pergunta sobre " + string(theme) + "?",
			Options:    []string{"Opção A", "Opção B", "Opção C", "Opção D"},
			CorrectIdx: 1,
		})
	}
	return t.QuestionService.LoadQuestions(questions)
}
