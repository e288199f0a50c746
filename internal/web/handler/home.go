package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmesquita/olimpicos/internal/i18n"
	"github.com/dmesquita/olimpicos/internal/services/game"
	"github.com/dmesquita/olimpicos/internal/services/session"
	"github.com/dmesquita/olimpicos/internal/web/middleware"
	"github.com/dmesquita/olimpicos/internal/web/templates/layout"
	"github.com/dmesquita/olimpicos/internal/web/templates/pages"
)

// HomeHandler handles the landing page and game creation
type HomeHandler struct {
	gameController game.ControllerInterface
	sessionService *session.Service
	logger         *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(gameController game.ControllerInterface, sessionService *session.Service, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		gameController: gameController,
		sessionService: sessionService,
		logger:         logger,
	}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	language := middleware.GetLanguage(r.Context())

	data := pages.HomeData{
		PageData: layout.PageData{
			Title:    i18n.T(language, "title"),
			Language: language,
			Flash:    middleware.GetFlash(r.Context()),
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Home(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// CreateGame creates a fresh game and redirects to its page
func (h *HomeHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	created, err := h.gameController.CreateGame(r.Context())
	if err != nil {
		h.logger.Error("failed to create game", slog.Any("error", err))
		middleware.SetFlash(w, "error", "Não foi possível criar o jogo")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/game/"+string(created.ID), http.StatusSeeOther)
}

// JoinGame redirects the join form to the game page
func (h *HomeHandler) JoinGame(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("id")))
	if id == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/game/"+id, http.StatusSeeOther)
}

// SetLanguage switches the session's interface language
func (h *HomeHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	language := r.FormValue("language")
	if !i18n.Supported(language) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess := middleware.GetSession(r.Context())
	if sess != nil {
		if err := h.sessionService.SetLanguage(r.Context(), sess.Token, language); err != nil {
			h.logger.Error("failed to set language", slog.Any("error", err))
		}
	}

	redirect := r.Header.Get("Referer")
	if redirect == "" {
		redirect = "/"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}
