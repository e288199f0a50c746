package sse

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dmesquita/olimpicos/internal/model"
	"github.com/dmesquita/olimpicos/internal/storage/memory"
)

func TestBroadcaster_NotifySendsSnapshot(t *testing.T) {
	logger := testLogger()
	store := memory.New()
	manager := NewHubManager(logger)
	broadcaster := NewBroadcaster(manager, store, logger)

	game := &model.Game{
		ID:    "GAME01",
		Phase: model.PhasePlaying,
		Players: []model.Player{
			model.NewPlayer(1, model.Archetypes[0]),
			model.NewPlayer(2, model.Archetypes[1]),
		},
	}
	if err := store.SaveGame(context.Background(), game); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	hub := manager.GetOrCreateHub(game.ID)
	defer manager.RemoveHub(game.ID)

	client := NewClient(hub)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.Notify(model.Notification{
		Type:   model.NotifyGameUpdate,
		GameID: game.ID,
	})

	select {
	case msg := <-client.send:
		text := string(msg)
		if !strings.HasPrefix(text, "event: game-update\n") {
			t.Errorf("unexpected event name in %q", text)
		}
		payload := strings.TrimSuffix(strings.TrimPrefix(text, "event: game-update\ndata: "), "\n\n")
		var snapshot map[string]any
		if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
			t.Fatalf("snapshot is not valid JSON: %v\n%s", err, payload)
		}
		if snapshot["id"] != "GAME01" {
			t.Errorf("snapshot id = %v, want GAME01", snapshot["id"])
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("client did not receive snapshot")
	}
}

func TestBroadcaster_ResetSendsPlainEvent(t *testing.T) {
	logger := testLogger()
	store := memory.New()
	manager := NewHubManager(logger)
	broadcaster := NewBroadcaster(manager, store, logger)

	hub := manager.GetOrCreateHub("GAME01")
	defer manager.RemoveHub("GAME01")

	client := NewClient(hub)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.Notify(model.Notification{
		Type:   model.NotifyGameReset,
		GameID: "GAME01",
	})

	select {
	case msg := <-client.send:
		expected := "event: game-reset\ndata: reset\n\n"
		if string(msg) != expected {
			t.Errorf("received %q, want %q", string(msg), expected)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("client did not receive reset event")
	}
}

func TestBroadcaster_NoHubIsANoOp(t *testing.T) {
	logger := testLogger()
	store := memory.New()
	manager := NewHubManager(logger)
	broadcaster := NewBroadcaster(manager, store, logger)

	// No hub exists for this game; nothing should panic or block
	broadcaster.Notify(model.Notification{
		Type:   model.NotifyGameUpdate,
		GameID: "NOHUB1",
	})
}
