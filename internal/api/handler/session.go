package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmesquita/olimpicos/internal/api/apierr"
	"github.com/dmesquita/olimpicos/internal/api/middleware"
	"github.com/dmesquita/olimpicos/internal/api/request"
	"github.com/dmesquita/olimpicos/internal/api/response"
	"github.com/dmesquita/olimpicos/internal/services/session"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	sessionService *session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *session.Service) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// CreateGuest handles POST /api/v1/sessions/guest
func (h *SessionHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessionService.CreateGuest(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionResponseFrom(sess, session.DefaultLanguage))
}

// GetMe handles GET /api/v1/sessions/me
func (h *SessionHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	language, err := h.sessionService.Language(r.Context(), sess.Token)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionResponseFrom(sess, language))
}

// SetLanguage handles PUT /api/v1/sessions/me/language
func (h *SessionHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var req request.SetLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Language != "pt-br" && req.Language != "en" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("unsupported language"))
		return
	}

	if err := h.sessionService.SetLanguage(r.Context(), sess.Token, req.Language); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionResponseFrom(sess, req.Language))
}
