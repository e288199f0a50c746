package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/dmesquita/olimpicos/internal/dependencies/clock"
	"github.com/dmesquita/olimpicos/internal/model"
	"github.com/dmesquita/olimpicos/internal/storage"
)

// The game is anonymous: every browser gets a guest session on first contact.
// The session carries per-visitor preferences such as the interface language.

var ErrInvalidSession = errors.New("invalid or expired session")

// DefaultLanguage is the interface language before any preference is saved
const DefaultLanguage = "pt-br"

// Session represents one visitor
type Session struct {
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service manages guest sessions and their stored preferences
type Service struct {
	storage storage.Storage
	clock   clock.Clock

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the session service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new SessionService
func New(storage storage.Storage, clock clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// CreateGuest creates a new guest session
func (s *Service) CreateGuest(ctx context.Context) (*Session, error) {
	token := generateToken()
	now := s.clock.Now()

	session := &Session{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session, nil
}

// Validate checks a session token and returns the session
func (s *Service) Validate(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// Invalidate removes a session
func (s *Service) Invalidate(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// SetLanguage persists the visitor's interface language
func (s *Service) SetLanguage(ctx context.Context, token, language string) error {
	if _, err := s.Validate(token); err != nil {
		return err
	}
	return s.storage.SavePreference(ctx, languageKey(token), language)
}

// Language returns the visitor's stored interface language, falling back to
// the default when none was saved
func (s *Service) Language(ctx context.Context, token string) (string, error) {
	if _, err := s.Validate(token); err != nil {
		return "", err
	}

	language, err := s.storage.GetPreference(ctx, languageKey(token))
	if err != nil {
		if errors.Is(err, model.ErrPreferenceNotFound) {
			return DefaultLanguage, nil
		}
		return "", err
	}
	return language, nil
}

// CleanExpired removes expired sessions (call periodically)
func (s *Service) CleanExpired() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

func languageKey(token string) string {
	return "language:" + token
}

func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
