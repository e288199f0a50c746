package model

import "errors"

// Common errors used across the application.
// Rule violations inside a game (rolling out of turn, answering with no open
// question, a full roster) are deliberately NOT errors: the state machine
// treats them as silent no-ops so that repeated UI intents stay harmless.
var (
	// Game errors
	ErrGameNotFound = errors.New("game not found")

	// Question catalogue errors
	ErrQuestionsNotLoaded = errors.New("question catalogue not loaded")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Preference errors
	ErrPreferenceNotFound = errors.New("preference not found")
)
