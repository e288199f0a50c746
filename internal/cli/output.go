package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case Game:
		o.printGame(v)
	case Board:
		o.printBoard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	Token    string `json:"token"`
	Language string `json:"language"`
}

// Player response type
type Player struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Position    int      `json:"position"`
	Artifacts   []string `json:"artifacts"`
	Powers      []string `json:"powers"`
	Icon        string   `json:"icon"`
}

// Question response type
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

// SpecialEvent response type
type SpecialEvent struct {
	InteractionID string `json:"interaction_id"`
	SpaceIndex    int    `json:"space_index"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	EffectVisible bool   `json:"effect_visible"`
}

// PowerPrompt response type
type PowerPrompt struct {
	InteractionID string   `json:"interaction_id"`
	Context       string   `json:"context"`
	Powers        []string `json:"powers"`
}

// Stats response type
type Stats struct {
	TurnCount      int `json:"turn_count"`
	Rounds         int `json:"rounds"`
	ElapsedMinutes int `json:"elapsed_minutes"`
}

// Game response type
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
}

// Space response type
type Space struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	Theme string `json:"theme,omitempty"`
}

// Board response type
type Board struct {
	Spaces []Space `json:"spaces"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Token: %s\n", s.Token)
	fmt.Printf("Language: %s\n", s.Language)
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Phase: %s\n", g.Phase)
	fmt.Printf("Turn: %d (round %d)\n", g.Stats.TurnCount, g.Stats.Rounds)
	if g.DiceValue > 0 {
		rolling := ""
		if g.IsRolling {
			rolling = " (rolling)"
		}
		fmt.Printf("Dice: %d%s\n", g.DiceValue, rolling)
	}

	fmt.Printf("Players (%d):\n", len(g.Players))
	for i, p := range g.Players {
		marker := " "
		if g.Phase != "setup" && i == g.CurrentPlayer {
			marker = ">"
		}
		fmt.Printf("  %s %s %s - space %d", marker, p.Icon, p.DisplayName, p.Position)
		if len(p.Artifacts) > 0 {
			fmt.Printf(" - %s", strings.Join(p.Artifacts, ""))
		}
		if len(p.Powers) > 0 {
			fmt.Printf(" - powers: %s", strings.Join(p.Powers, ", "))
		}
		fmt.Println()
	}

	if g.Question != nil {
		fmt.Printf("\nQuestion (%s, %s, %ds):\n", g.Question.Theme, g.Question.Difficulty, g.Question.TimeLimit)
		fmt.Printf("  %s\n", g.Question.Prompt)
		hidden := make(map[int]bool, len(g.Question.HiddenOptions))
		for _, h := range g.Question.HiddenOptions {
			hidden[h] = true
		}
		for i, opt := range g.Question.Options {
			if hidden[i] {
				continue
			}
			marker := " "
			if g.Question.CorrectOption != nil && *g.Question.CorrectOption == i {
				marker = "*"
			}
			fmt.Printf("  %s %d) %s\n", marker, i, opt)
		}
	}

	if g.SpecialEvent != nil {
		fmt.Printf("\nEvent: %s\n", g.SpecialEvent.Name)
		fmt.Printf("  %s\n", g.SpecialEvent.Description)
	}

	if g.PowerPrompt != nil {
		fmt.Printf("\nPowers available: %s\n", strings.Join(g.PowerPrompt.Powers, ", "))
	}

	if g.Winner != 0 {
		fmt.Printf("\nWinner: player %d (%s)\n", g.Winner, g.VictoryType)
	}

	if len(g.History) > 0 {
		fmt.Println("\nHistory:")
		for _, entry := range g.History {
			fmt.Printf("  - %s\n", entry)
		}
	}
}

// printBoard renders the track in rows of ten spaces
func (o *Output) printBoard(b Board) {
	for i, space := range b.Spaces {
		var cell string
		switch space.Type {
		case "start":
			cell = "INI"
		case "finish":
			cell = "FIM"
		case "special":
			cell = " * "
		default:
			// First letter of the theme
			cell = " " + string([]rune(space.Theme)[0]) + " "
		}
		fmt.Printf("[%2d %s]", space.Index, cell)
		if (i+1)%10 == 0 {
			fmt.Println()
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
