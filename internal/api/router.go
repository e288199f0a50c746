package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmesquita/olimpicos/internal/api/handler"
	"github.com/dmesquita/olimpicos/internal/api/middleware"
	"github.com/dmesquita/olimpicos/internal/services/board"
	"github.com/dmesquita/olimpicos/internal/services/game"
	"github.com/dmesquita/olimpicos/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	SessionService *session.Service
	GameController *game.Controller
	BoardService   *board.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.SessionService)
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.BoardService)

	authMiddleware := middleware.Auth(cfg.SessionService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes (no auth required for creating one)
	api.HandleFunc("/sessions/guest", sessionHandler.CreateGuest).Methods(http.MethodPost)

	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(authMiddleware)
	sessions.HandleFunc("/me", sessionHandler.GetMe).Methods(http.MethodGet)
	sessions.HandleFunc("/me/language", sessionHandler.SetLanguage).Methods(http.MethodPut)

	// The board layout is static and public
	api.HandleFunc("/board", gameHandler.GetBoard).Methods(http.MethodGet)

	// Game routes (all require a session)
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	games.HandleFunc("/{id}/players", gameHandler.AddPlayer).Methods(http.MethodPost)
	games.HandleFunc("/{id}/players/{player_id}", gameHandler.UpdatePlayer).Methods(http.MethodPatch)
	games.HandleFunc("/{id}/players/{player_id}", gameHandler.RemovePlayer).Methods(http.MethodDelete)
	games.HandleFunc("/{id}/start", gameHandler.Start).Methods(http.MethodPost)
	games.HandleFunc("/{id}/roll", gameHandler.Roll).Methods(http.MethodPost)
	games.HandleFunc("/{id}/answer", gameHandler.Answer).Methods(http.MethodPost)
	games.HandleFunc("/{id}/event/resolve", gameHandler.ResolveEvent).Methods(http.MethodPost)
	games.HandleFunc("/{id}/powers/activate", gameHandler.ActivatePower).Methods(http.MethodPost)
	games.HandleFunc("/{id}/powers/decline", gameHandler.DeclinePowers).Methods(http.MethodPost)
	games.HandleFunc("/{id}/timeout", gameHandler.Timeout).Methods(http.MethodPost)
	games.HandleFunc("/{id}/reset", gameHandler.Reset).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
