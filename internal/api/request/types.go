package request

// UpdatePlayerRequest is the request body for editing a roster player during
// setup. Nil fields are left unchanged.
type UpdatePlayerRequest struct {
	Archetype  *string `json:"archetype,omitempty"`
	CustomName *string `json:"custom_name,omitempty"`
}

// AnswerRequest is the request body for answering the open question
type AnswerRequest struct {
	InteractionID string `json:"interaction_id"`
	Option        int    `json:"option"`
}

// ResolveEventRequest is the request body for resolving the open special event
type ResolveEventRequest struct {
	InteractionID string `json:"interaction_id"`
}

// ActivatePowerRequest is the request body for spending a power
type ActivatePowerRequest struct {
	PlayerID int    `json:"player_id"`
	Power    string `json:"power"`
}

// DeclinePowersRequest is the request body for dismissing a power prompt
type DeclinePowersRequest struct {
	InteractionID string `json:"interaction_id"`
}

// SetLanguageRequest is the request body for saving the interface language
type SetLanguageRequest struct {
	Language string `json:"language"`
}
