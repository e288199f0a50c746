package model

import "time"

// NotificationType names a push event sent to connected clients
type NotificationType string

const (
	NotifyGameUpdate    NotificationType = "game-update"    // snapshot changed, re-render
	NotifyDiceTick      NotificationType = "dice-tick"      // interim animation draw
	NotifyQuestion      NotificationType = "question"       // a question opened
	NotifySpecialEvent  NotificationType = "special-event"  // a special event opened
	NotifyEffectReveal  NotificationType = "effect-reveal"  // event effect text became visible
	NotifyPowerPrompt   NotificationType = "power-prompt"   // power activation offered
	NotifyGameEnded     NotificationType = "game-ended"     // victory fired
	NotifyGameReset     NotificationType = "game-reset"     // back to setup
)

// Notification is pushed to clients after each committed state change
type Notification struct {
	Type      NotificationType
	GameID    GameID
	Timestamp time.Time
}
