package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmesquita/olimpicos/internal/api/apierr"
	"github.com/dmesquita/olimpicos/internal/api/request"
	"github.com/dmesquita/olimpicos/internal/api/response"
	"github.com/dmesquita/olimpicos/internal/model"
	"github.com/dmesquita/olimpicos/internal/services/board"
	"github.com/dmesquita/olimpicos/internal/services/game"
)

// GameHandler handles game endpoints. Mutating endpoints hand the intent to
// the controller and respond with the resulting snapshot; intents that do not
// apply in the current phase simply return the unchanged snapshot.
type GameHandler struct {
	gameController *game.Controller
	boardService   *board.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, boardService *board.Service) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		boardService:   boardService,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

func playerID(r *http.Request) (model.PlayerID, error) {
	id, err := strconv.Atoi(mux.Vars(r)["player_id"])
	if err != nil {
		return 0, apierr.NewInvalidRequestError("player_id must be an integer")
	}
	return model.PlayerID(id), nil
}

// writeSnapshot responds with the game's current snapshot
func (h *GameHandler) writeSnapshot(w http.ResponseWriter, r *http.Request, id model.GameID, status int) {
	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, status, response.GameFromModel(g))
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.CreateGame(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeSnapshot(w, r, gameID(r), http.StatusOK)
}

// GetBoard handles GET /api/v1/board
func (h *GameHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.BoardFromModel(h.boardService.Board()))
}

// AddPlayer handles POST /api/v1/games/{id}/players
func (h *GameHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.gameController.AddPlayer(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, r, id, http.StatusOK)
}

// RemovePlayer handles DELETE /api/v1/games/{id}/players/{player_id}
func (h *GameHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	pid, err := playerID(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if err := h.gameController.RemovePlayer(r.Context(), id, pid); err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, r, id, http.StatusOK)
}

// UpdatePlayer handles PATCH /api/v1/games/{id}/players/{player_id}
func (h *GameHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	pid, err := playerID(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Archetype != nil {
		if err := h.gameController.SetArchetype(r.Context(), id, pid, *req.Archetype); err != nil {
			apierr.WriteError(w, err)
			return
		}
	}
	if req.CustomName != nil {
		if err := h.gameController.SetCustomName(r.Context(), id, pid, *req.CustomName); err != nil {
			apierr.WriteError(w, err)
			return
		}
	}

	h.writeSnapshot(w, r, id, http.StatusOK)
}

// Start handles POST /api/v1/games/{id}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.gameController.StartGame(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, r, id, http.StatusOK)
}

// Roll handles POST /api/v1/games/{id}/roll
func (h *GameHandler) Roll(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.gameController.RollDice(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, r, id, http.StatusOK)
}

// Answer handles POST /api/v1/games/{id}/answer
func (h *GameHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req request.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.InteractionID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("interaction_id is required"))
		return
	}

	if err := h.gameController.AnswerQuestion(r.Context(), id, req.InteractionID, req.Option); err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, r, id, http.StatusOK)
}

// ResolveEvent handles POST /api/v1/games/{id}/event/resolve
func (h *GameHandler) ResolveEvent(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req request.ResolveEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.InteractionID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("interaction_id is required"))
		return
	}

	if err := h.gameController.ResolveSpecialEvent(r.Context(), id, req.InteractionID); err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, r, id, http.StatusOK)
}

// ActivatePower handles POST /api/v1/games/{id}/powers/activate
func (h *GameHandler) ActivatePower(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req request.ActivatePowerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	err := h.gameController.ActivatePower(r.Context(), id, model.PlayerID(req.PlayerID), model.PowerID(req.Power))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, r, id, http.StatusOK)
}

// DeclinePowers handles POST /api/v1/games/{id}/powers/decline
func (h *GameHandler) DeclinePowers(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req request.DeclinePowersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.gameController.DeclinePowers(r.Context(), id, req.InteractionID); err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, r, id, http.StatusOK)
}

// Timeout handles POST /api/v1/games/{id}/timeout
func (h *GameHandler) Timeout(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.gameController.EndByTimeout(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, r, id, http.StatusOK)
}

// Reset handles POST /api/v1/games/{id}/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.gameController.ResetGame(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, r, id, http.StatusOK)
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.DeleteGame(r.Context(), gameID(r)); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.NoContent(w)
}
