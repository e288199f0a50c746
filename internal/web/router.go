package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmesquita/olimpicos/internal/services/board"
	"github.com/dmesquita/olimpicos/internal/services/game"
	"github.com/dmesquita/olimpicos/internal/services/session"
	"github.com/dmesquita/olimpicos/internal/web/handler"
	"github.com/dmesquita/olimpicos/internal/web/middleware"
	"github.com/dmesquita/olimpicos/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	SessionService *session.Service
	GameController game.ControllerInterface
	BoardService   board.BoardService
	HubManager     *sse.HubManager
	StaticDir      string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	sessionMiddleware := middleware.Session(cfg.SessionService, cfg.Logger)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create SSE hub manager if not provided
	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.GameController, cfg.SessionService, cfg.Logger)
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.BoardService, hubManager, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Every page carries a guest session; there is no login step
	site := r.NewRoute().Subrouter()
	site.Use(flashMiddleware)
	site.Use(sessionMiddleware)

	site.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	site.HandleFunc("/language", homeHandler.SetLanguage).Methods(http.MethodPost)

	// Game lifecycle
	site.HandleFunc("/game", homeHandler.CreateGame).Methods(http.MethodPost)
	site.HandleFunc("/game", homeHandler.JoinGame).Methods(http.MethodGet)
	site.HandleFunc("/game/{gameID}", gameHandler.View).Methods(http.MethodGet)
	site.HandleFunc("/game/{gameID}/root", gameHandler.Root).Methods(http.MethodGet)
	site.HandleFunc("/game/{gameID}/events", gameHandler.Events).Methods(http.MethodGet)

	// Setup actions
	site.HandleFunc("/game/{gameID}/players", gameHandler.AddPlayer).Methods(http.MethodPost)
	site.HandleFunc("/game/{gameID}/players/{playerID}", gameHandler.UpdatePlayer).Methods(http.MethodPost)
	site.HandleFunc("/game/{gameID}/players/{playerID}/remove", gameHandler.RemovePlayer).Methods(http.MethodPost)
	site.HandleFunc("/game/{gameID}/start", gameHandler.Start).Methods(http.MethodPost)

	// Turn actions
	site.HandleFunc("/game/{gameID}/roll", gameHandler.Roll).Methods(http.MethodPost)
	site.HandleFunc("/game/{gameID}/answer", gameHandler.Answer).Methods(http.MethodPost)
	site.HandleFunc("/game/{gameID}/event", gameHandler.ResolveEvent).Methods(http.MethodPost)
	site.HandleFunc("/game/{gameID}/power", gameHandler.ActivatePower).Methods(http.MethodPost)
	site.HandleFunc("/game/{gameID}/power/decline", gameHandler.DeclinePowers).Methods(http.MethodPost)
	site.HandleFunc("/game/{gameID}/reset", gameHandler.Reset).Methods(http.MethodPost)

	return r
}
