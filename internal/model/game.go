package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GamePhase represents the current phase of a game
type GamePhase string

const (
	PhaseSetup    GamePhase = "setup"    // Configuring the player roster
	PhasePlaying  GamePhase = "playing"  // Waiting for the current player to roll
	PhaseQuestion GamePhase = "question" // A question is open
	PhaseEnded    GamePhase = "ended"    // A victory condition fired
)

// VictoryType records how a game was won
type VictoryType string

const (
	VictoryArtifacts VictoryType = "artifacts" // all 7 artifacts collected
	VictoryFinish    VictoryType = "finish"    // reached the final space
	VictoryTimeout   VictoryType = "timeout"   // most artifacts when time ran out
)

// Roster bounds during setup
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// HistoryLimit bounds the rolling history log
const HistoryLimit = 10

// OpenQuestion is the question sub-interaction.
// At most one sub-interaction (question, special event, power prompt) is open
// at a time; the state machine never opens two concurrently.
type OpenQuestion struct {
	InteractionID string
	Question      Question
	TimeLimit     int   // seconds, after power modifiers
	HiddenOptions []int // wrong options removed by 50/50
	RevealCorrect bool  // Divine Insight active
	OpenedAt      time.Time
}

// OptionHidden reports whether an option index was removed by 50/50
func (q *OpenQuestion) OptionHidden(index int) bool {
	for _, h := range q.HiddenOptions {
		if h == index {
			return true
		}
	}
	return false
}

// OpenSpecialEvent is the special event sub-interaction
type OpenSpecialEvent struct {
	InteractionID string
	SpaceIndex    int
	Event         SpecialEvent
	EffectVisible bool // flipped after a short pause for presentation pacing
}

// PowerPrompt is the power-activation sub-interaction
type PowerPrompt struct {
	InteractionID string
	Context       PowerContext
	Powers        []PowerID
}

// Game owns all mutable state of one session
type Game struct {
	ID    GameID
	Phase GamePhase

	Players       []Player
	CurrentPlayer int // index into Players
	TurnCount     int

	DiceValue          int
	IsRolling          bool
	RollTicksLeft      int // remaining animation draws before the final value
	PendingSpaceAction bool
	ExtraTurnPending   bool // current player rolls again when the turn ends

	Question     *OpenQuestion
	SpecialEvent *OpenSpecialEvent
	PowerPrompt  *PowerPrompt

	Winner      PlayerID // 0 until a victory fires
	VictoryType VictoryType

	History []string

	StartedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Current returns the player whose turn it is
func (g *Game) Current() *Player {
	return &g.Players[g.CurrentPlayer]
}

// PlayerByID returns the player with the given ID, or nil
func (g *Game) PlayerByID(id PlayerID) *Player {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// AppendHistory appends a log entry, keeping only the most recent entries
func (g *Game) AppendHistory(message string) {
	g.History = append(g.History, message)
	if len(g.History) > HistoryLimit {
		g.History = g.History[len(g.History)-HistoryLimit:]
	}
}

// AdvancePlayer moves the turn to the next player in round-robin order
func (g *Game) AdvancePlayer() {
	g.CurrentPlayer = (g.CurrentPlayer + 1) % len(g.Players)
}

// CanRoll reports whether a dice roll is currently allowed
func (g *Game) CanRoll() bool {
	return g.Phase == PhasePlaying &&
		!g.IsRolling &&
		!g.PendingSpaceAction &&
		g.SpecialEvent == nil &&
		g.PowerPrompt == nil
}

// Rounds returns the number of completed round-robin rounds
func (g *Game) Rounds() int {
	if len(g.Players) == 0 {
		return 0
	}
	return (g.TurnCount + len(g.Players) - 1) / len(g.Players)
}
