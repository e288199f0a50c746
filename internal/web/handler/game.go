package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/dmesquita/olimpicos/internal/model"
	"github.com/dmesquita/olimpicos/internal/services/board"
	"github.com/dmesquita/olimpicos/internal/services/game"
	"github.com/dmesquita/olimpicos/internal/web/middleware"
	"github.com/dmesquita/olimpicos/internal/web/sse"
	"github.com/dmesquita/olimpicos/internal/web/templates/layout"
	"github.com/dmesquita/olimpicos/internal/web/templates/pages"
)

// GameHandler handles the game page and its htmx actions
type GameHandler struct {
	gameController game.ControllerInterface
	boardService   board.BoardService
	hubManager     *sse.HubManager
	logger         *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameController game.ControllerInterface, boardService board.BoardService, hubManager *sse.HubManager, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		boardService:   boardService,
		hubManager:     hubManager,
		logger:         logger,
	}
}

func gameIDVar(r *http.Request) model.GameID {
	return model.GameID(strings.ToUpper(mux.Vars(r)["gameID"]))
}

func playerIDVar(r *http.Request) (model.PlayerID, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["playerID"])
	if err != nil {
		return 0, false
	}
	return model.PlayerID(id), true
}

// View renders the full game page
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)
	language := middleware.GetLanguage(r.Context())

	g, err := h.gameController.GetGame(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			middleware.SetFlash(w, "error", "Jogo não encontrado")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.logger.Error("failed to load game", slog.String("game", string(gameID)), slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.GameData{
		PageData: layout.PageData{
			Title:    string(g.ID),
			Language: language,
			Flash:    middleware.GetFlash(r.Context()),
		},
		Game:  g,
		Board: h.boardService.Board(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Game(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Root renders only the refreshable game root, for htmx swaps
func (h *GameHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.renderRoot(w, r, gameIDVar(r))
}

// Events streams server-sent events for a game
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)

	if _, err := h.gameController.GetGame(r.Context(), gameID); err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	hub := h.hubManager.GetOrCreateHub(gameID)
	sse.ServeSSE(w, r, hub)
}

// AddPlayer adds a player during setup
func (h *GameHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)
	h.afterAction(w, r, gameID, h.gameController.AddPlayer(r.Context(), gameID))
}

// UpdatePlayer applies the setup form for one player
func (h *GameHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)
	playerID, ok := playerIDVar(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if archetype := r.FormValue("archetype"); archetype != "" {
		if err := h.gameController.SetArchetype(r.Context(), gameID, playerID, archetype); err != nil {
			h.afterAction(w, r, gameID, err)
			return
		}
	}

	err := h.gameController.SetCustomName(r.Context(), gameID, playerID, strings.TrimSpace(r.FormValue("custom_name")))
	h.afterAction(w, r, gameID, err)
}

// RemovePlayer removes a player during setup
func (h *GameHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)
	playerID, ok := playerIDVar(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.afterAction(w, r, gameID, h.gameController.RemovePlayer(r.Context(), gameID, playerID))
}

// Start begins the journey
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)
	h.afterAction(w, r, gameID, h.gameController.StartGame(r.Context(), gameID))
}

// Roll starts the dice animation for the current player
func (h *GameHandler) Roll(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)
	h.afterAction(w, r, gameID, h.gameController.RollDice(r.Context(), gameID))
}

// Answer submits an answer to the open question
func (h *GameHandler) Answer(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)

	option, err := strconv.Atoi(r.FormValue("option"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err = h.gameController.AnswerQuestion(r.Context(), gameID, r.FormValue("interaction_id"), option)
	h.afterAction(w, r, gameID, err)
}

// ResolveEvent acknowledges the open special event
func (h *GameHandler) ResolveEvent(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)
	err := h.gameController.ResolveSpecialEvent(r.Context(), gameID, r.FormValue("interaction_id"))
	h.afterAction(w, r, gameID, err)
}

// ActivatePower spends one of the current player's powers
func (h *GameHandler) ActivatePower(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)

	playerID, err := strconv.Atoi(r.FormValue("player_id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err = h.gameController.ActivatePower(r.Context(), gameID, model.PlayerID(playerID), model.PowerID(r.FormValue("power")))
	h.afterAction(w, r, gameID, err)
}

// DeclinePowers closes the open power prompt without spending anything
func (h *GameHandler) DeclinePowers(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)
	err := h.gameController.DeclinePowers(r.Context(), gameID, r.FormValue("interaction_id"))
	h.afterAction(w, r, gameID, err)
}

// Reset returns an ended game to setup
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDVar(r)
	h.afterAction(w, r, gameID, h.gameController.ResetGame(r.Context(), gameID))
}

// afterAction finishes a state-changing request. htmx requests get the fresh
// game root to swap in; plain form posts get a redirect back to the page.
func (h *GameHandler) afterAction(w http.ResponseWriter, r *http.Request, gameID model.GameID, err error) {
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			middleware.SetFlash(w, "error", "Jogo não encontrado")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.logger.Error("game action failed",
			slog.String("game", string(gameID)),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		h.renderRoot(w, r, gameID)
		return
	}

	http.Redirect(w, r, "/game/"+string(gameID), http.StatusSeeOther)
}

func (h *GameHandler) renderRoot(w http.ResponseWriter, r *http.Request, gameID model.GameID) {
	g, err := h.gameController.GetGame(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load game", slog.String("game", string(gameID)), slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.GameData{
		PageData: layout.PageData{
			Title:    string(g.ID),
			Language: middleware.GetLanguage(r.Context()),
		},
		Game:  g,
		Board: h.boardService.Board(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.GameRoot(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
