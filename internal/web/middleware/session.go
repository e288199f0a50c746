package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmesquita/olimpicos/internal/services/session"
)

type contextKey string

const (
	sessionCookieName = "session"

	sessionContextKey  = contextKey("session")
	languageContextKey = contextKey("language")
)

// GetSession retrieves the session from the request context
// Returns nil if no session is set
func GetSession(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionContextKey).(*session.Session)
	return s
}

// GetLanguage retrieves the interface language from the request context
func GetLanguage(ctx context.Context) string {
	language, ok := ctx.Value(languageContextKey).(string)
	if !ok {
		return session.DefaultLanguage
	}
	return language
}

// Session returns middleware that attaches a guest session to every request.
// A missing or expired session cookie gets a fresh guest session; the browser
// never sees a login step.
func Session(sessionService *session.Service, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session

			if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
				sess, _ = sessionService.Validate(cookie.Value)
			}

			if sess == nil {
				created, err := sessionService.CreateGuest(r.Context())
				if err != nil {
					logger.Error("failed to create guest session", slog.Any("error", err))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				sess = created

				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    sess.Token,
					Path:     "/",
					Expires:  sess.ExpiresAt,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			language, err := sessionService.Language(r.Context(), sess.Token)
			if err != nil {
				language = session.DefaultLanguage
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			ctx = context.WithValue(ctx, languageContextKey, language)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
