package sse

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/dmesquita/olimpicos/internal/api/response"
	"github.com/dmesquita/olimpicos/internal/model"
	"github.com/dmesquita/olimpicos/internal/storage"
)

// Broadcaster pushes game snapshots to connected clients. It implements the
// controller's Notifier hook: after every committed state change it loads the
// fresh snapshot and broadcasts it under the notification's event name, so
// clients re-render without polling.
type Broadcaster struct {
	hubManager *HubManager
	storage    storage.Storage
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, storage storage.Storage, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		storage:    storage,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Notify broadcasts the notification's game snapshot to its hub
func (b *Broadcaster) Notify(notification model.Notification) {
	hub := b.hubManager.GetHub(notification.GameID)
	if hub == nil {
		return
	}

	if notification.Type == model.NotifyGameReset {
		// The snapshot after a reset is a fresh setup game; clients reload
		hub.BroadcastEvent(string(model.NotifyGameReset), "reset")
		return
	}

	game, err := b.storage.GetGame(context.Background(), notification.GameID)
	if err != nil {
		b.logger.Error("sse failed to load game for broadcast",
			slog.String("game", string(notification.GameID)),
			slog.Any("error", err))
		return
	}

	data, err := json.Marshal(response.GameFromModel(game))
	if err != nil {
		b.logger.Error("sse failed to marshal snapshot",
			slog.String("game", string(notification.GameID)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(notification.Type), string(data))
}
