package response

import (
	"time"

	"github.com/dmesquita/olimpicos/internal/model"
	"github.com/dmesquita/olimpicos/internal/services/session"
)

// SessionResponse is the response for session endpoints
type SessionResponse struct {
	Token    string `json:"token"`
	Language string `json:"language"`
}

// SessionResponseFrom builds a SessionResponse
func SessionResponseFrom(s *session.Session, language string) SessionResponse {
	return SessionResponse{
		Token:    s.Token,
		Language: language,
	}
}

// Player represents a roster player in API responses
type Player struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	CustomName  string   `json:"custom_name,omitempty"`
	DisplayName string   `json:"display_name"`
	Position    int      `json:"position"`
	Artifacts   []string `json:"artifacts"`
	Powers      []string `json:"powers"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	BgColor     string   `json:"bg_color"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p *model.Player) Player {
	artifacts := make([]string, len(p.Artifacts))
	for i, theme := range p.Artifacts {
		artifacts[i] = model.ThemeArtifacts[theme]
	}
	powers := make([]string, len(p.Powers))
	for i, power := range p.Powers {
		powers[i] = string(power)
	}
	return Player{
		ID:          int(p.ID),
		Name:        p.Name,
		CustomName:  p.CustomName,
		DisplayName: p.DisplayName(),
		Position:    p.Position,
		Artifacts:   artifacts,
		Powers:      powers,
		Icon:        p.Icon,
		Color:       p.Color,
		BgColor:     p.BgColor,
	}
}

// Space represents one board space
type Space struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	Theme string `json:"theme,omitempty"`
}

// Board is the full track layout
type Board struct {
	Spaces []Space `json:"spaces"`
}

// BoardFromModel converts a model.Board
func BoardFromModel(b *model.Board) Board {
	spaces := make([]Space, len(b.Spaces))
	for i, s := range b.Spaces {
		spaces[i] = Space{
			Index: s.Index,
			Type:  string(s.Type),
			Theme: string(s.Theme),
		}
	}
	return Board{Spaces: spaces}
}

// Question is the open question as shown to players. The correct option index
// is only included while Divine Insight is active; answers are judged server
// side.
type Question struct {
	InteractionID string   `json:"interaction_id"`
	Theme         string   `json:"theme"`
	Difficulty    string   `json:"difficulty"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	HiddenOptions []int    `json:"hidden_options,omitempty"`
	TimeLimit     int      `json:"time_limit"`
	CorrectOption *int     `json:"correct_option,omitempty"`
}

// QuestionFromModel converts an open question
func QuestionFromModel(q *model.OpenQuestion) *Question {
	if q == nil {
		return nil
	}
	resp := &Question{
		InteractionID: q.InteractionID,
		Theme:         string(q.Question.Theme),
		Difficulty:    q.Question.Difficulty.Label(),
		Prompt:        q.Question.Prompt,
		Options:       q.Question.Options,
		HiddenOptions: q.HiddenOptions,
		TimeLimit:     q.TimeLimit,
	}
	if q.RevealCorrect {
		correct := q.Question.CorrectIdx
		resp.CorrectOption = &correct
	}
	return resp
}

// SpecialEvent is the open special event
type SpecialEvent struct {
	InteractionID string `json:"interaction_id"`
	SpaceIndex    int    `json:"space_index"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	EffectVisible bool   `json:"effect_visible"`
}

// SpecialEventFromModel converts an open special event
func SpecialEventFromModel(e *model.OpenSpecialEvent) *SpecialEvent {
	if e == nil {
		return nil
	}
	return &SpecialEvent{
		InteractionID: e.InteractionID,
		SpaceIndex:    e.SpaceIndex,
		Name:          e.Event.Name,
		Description:   e.Event.Description,
		EffectVisible: e.EffectVisible,
	}
}

// PowerPrompt is the open power prompt
type PowerPrompt struct {
	InteractionID string   `json:"interaction_id"`
	Context       string   `json:"context"`
	Powers        []string `json:"powers"`
}

// PowerPromptFromModel converts an open power prompt
func PowerPromptFromModel(p *model.PowerPrompt) *PowerPrompt {
	if p == nil {
		return nil
	}
	powers := make([]string, len(p.Powers))
	for i, power := range p.Powers {
		powers[i] = string(power)
	}
	return &PowerPrompt{
		InteractionID: p.InteractionID,
		Context:       string(p.Context),
		Powers:        powers,
	}
}

// Stats summarizes a running or finished game
type Stats struct {
	TurnCount      int `json:"turn_count"`
	Rounds         int `json:"rounds"`
	ElapsedMinutes int `json:"elapsed_minutes"`
}

// Game is the full game snapshot
type Game struct {
	ID            string        `json:"id"`
	Phase         string        `json:"phase"`
	Players       []Player      `json:"players"`
	CurrentPlayer int           `json:"current_player"`
	DiceValue     int           `json:"dice_value"`
	IsRolling     bool          `json:"is_rolling"`
	Question      *Question     `json:"question,omitempty"`
	SpecialEvent  *SpecialEvent `json:"special_event,omitempty"`
	PowerPrompt   *PowerPrompt  `json:"power_prompt,omitempty"`
	Winner        int           `json:"winner,omitempty"`
	VictoryType   string        `json:"victory_type,omitempty"`
	History       []string      `json:"history"`
	Stats         Stats         `json:"stats"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// GameFromModel converts a model.Game to its snapshot
func GameFromModel(g *model.Game) Game {
	players := make([]Player, len(g.Players))
	for i := range g.Players {
		players[i] = PlayerFromModel(&g.Players[i])
	}
	return Game{
		ID:            string(g.ID),
		Phase:         string(g.Phase),
		Players:       players,
		CurrentPlayer: g.CurrentPlayer,
		DiceValue:     g.DiceValue,
		IsRolling:     g.IsRolling,
		Question:      QuestionFromModel(g.Question),
		SpecialEvent:  SpecialEventFromModel(g.SpecialEvent),
		PowerPrompt:   PowerPromptFromModel(g.PowerPrompt),
		Winner:        int(g.Winner),
		VictoryType:   string(g.VictoryType),
		History:       g.History,
		Stats: Stats{
			TurnCount:      g.TurnCount,
			Rounds:         g.Rounds(),
			ElapsedMinutes: elapsedMinutes(g),
		},
		UpdatedAt: g.UpdatedAt,
	}
}

// elapsedMinutes measures play time from start to the last state change
func elapsedMinutes(g *model.Game) int {
	if g.StartedAt.IsZero() {
		return 0
	}
	return int(g.UpdatedAt.Sub(g.StartedAt).Minutes())
}
