// Package components holds the page fragments of the game UI. Fragments carry
// stable element IDs so SSE-triggered refreshes can swap them in place.
package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmesquita/olimpicos/internal/i18n"
	"github.com/dmesquita/olimpicos/internal/model"
)

// Board renders the 60-space track with player tokens
func Board(board *model.Board, game *model.Game) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="board" class="board">`)
		for _, space := range board.Spaces {
			b.WriteString(fmt.Sprintf(`<div class="space space-%s" data-index="%d">`,
				templ.EscapeString(string(space.Type)), space.Index))
			switch space.Type {
			case model.SpaceStart:
				b.WriteString("🏁")
			case model.SpaceFinish:
				b.WriteString("🏛️")
			case model.SpaceSpecial:
				b.WriteString("✨")
			default:
				b.WriteString(templ.EscapeString(model.ThemeArtifacts[space.Theme]))
			}
			for i := range game.Players {
				p := &game.Players[i]
				if p.Position == space.Index {
					b.WriteString(fmt.Sprintf(`<span class="token %s">%s</span>`,
						templ.EscapeString(p.BgColor), templ.EscapeString(p.Icon)))
				}
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// PlayerList renders the roster with artifacts and powers
func PlayerList(game *model.Game, language string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="players" class="players">`)
		b.WriteString(fmt.Sprintf(`<h2>%s</h2>`, templ.EscapeString(i18n.T(language, "players"))))
		for i := range game.Players {
			p := &game.Players[i]
			current := ""
			if game.Phase != model.PhaseSetup && i == game.CurrentPlayer {
				current = " player-current"
			}
			b.WriteString(fmt.Sprintf(`<div class="player %s%s" data-player-id="%d">`,
				templ.EscapeString(p.BgColor), current, p.ID))
			b.WriteString(fmt.Sprintf(`<span class="player-icon">%s</span><span class="player-name %s">%s</span>`,
				templ.EscapeString(p.Icon), templ.EscapeString(p.Color), templ.EscapeString(p.DisplayName())))
			b.WriteString(`<span class="player-artifacts">`)
			for _, theme := range p.Artifacts {
				b.WriteString(templ.EscapeString(model.ThemeArtifacts[theme]))
			}
			b.WriteString(`</span>`)
			if len(p.Powers) > 0 {
				b.WriteString(fmt.Sprintf(`<span class="player-powers">%d ⚡</span>`, len(p.Powers)))
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// SetupPanel renders the roster editor shown before the game starts
func SetupPanel(game *model.Game, language string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="setup" class="setup">`)
		for i := range game.Players {
			p := &game.Players[i]
			b.WriteString(fmt.Sprintf(`<form class="setup-player" method="post" action="/game/%s/players/%d">`,
				templ.EscapeString(string(game.ID)), p.ID))
			b.WriteString(`<select name="archetype">`)
			for _, a := range model.Archetypes {
				selected := ""
				if a.Name == p.Name {
					selected = " selected"
				}
				b.WriteString(fmt.Sprintf(`<option value=%q%s>%s %s</option>`,
					templ.EscapeString(a.Name), selected, templ.EscapeString(a.Icon), templ.EscapeString(a.Name)))
			}
			b.WriteString(`</select>`)
			b.WriteString(fmt.Sprintf(`<input type="text" name="custom_name" value=%q placeholder=%q/>`,
				templ.EscapeString(p.CustomName), templ.EscapeString(p.Name)))
			b.WriteString(`<button type="submit">✓</button></form>`)
			if len(game.Players) > model.MinPlayers {
				b.WriteString(fmt.Sprintf(`<form method="post" action="/game/%s/players/%d/remove"><button type="submit">%s</button></form>`,
					templ.EscapeString(string(game.ID)), p.ID, templ.EscapeString(i18n.T(language, "remove"))))
			}
		}
		if len(game.Players) < model.MaxPlayers {
			b.WriteString(fmt.Sprintf(`<form method="post" action="/game/%s/players"><button type="submit">%s</button></form>`,
				templ.EscapeString(string(game.ID)), templ.EscapeString(i18n.T(language, "add_player"))))
		}
		b.WriteString(fmt.Sprintf(`<form method="post" action="/game/%s/start"><button class="primary" type="submit">%s</button></form>`,
			templ.EscapeString(string(game.ID)), templ.EscapeString(i18n.T(language, "start_game"))))
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// DicePanel renders the die and the roll control
func DicePanel(game *model.Game, language string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="dice" class="dice">`)
		rolling := ""
		if game.IsRolling {
			rolling = " dice-rolling"
		}
		b.WriteString(fmt.Sprintf(`<div class="die%s">%d</div>`, rolling, game.DiceValue))
		if game.CanRoll() {
			b.WriteString(fmt.Sprintf(
				`<button hx-post="/game/%s/roll" hx-target="#game-root" hx-swap="outerHTML">%s</button>`,
				templ.EscapeString(string(game.ID)), templ.EscapeString(i18n.T(language, "roll_dice"))))
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// QuestionModal renders the open question
func QuestionModal(game *model.Game, language string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		q := game.Question
		if q == nil {
			return nil
		}
		var b strings.Builder
		b.WriteString(`<div id="question" class="modal question">`)
		b.WriteString(fmt.Sprintf(`<h3>%s %s (%s)</h3>`,
			templ.EscapeString(model.ThemeArtifacts[q.Question.Theme]),
			templ.EscapeString(string(q.Question.Theme)),
			templ.EscapeString(q.Question.Difficulty.Label())))
		b.WriteString(fmt.Sprintf(`<p class="prompt">%s</p>`, templ.EscapeString(q.Question.Prompt)))
		b.WriteString(fmt.Sprintf(`<p class="timer" data-limit="%d">%s</p>`,
			q.TimeLimit, templ.EscapeString(i18n.T(language, "time_left"))))
		for i, option := range q.Question.Options {
			if q.OptionHidden(i) {
				continue
			}
			class := "option"
			if q.RevealCorrect && i == q.Question.CorrectIdx {
				class = "option option-revealed"
			}
			b.WriteString(fmt.Sprintf(
				`<form method="post" action="/game/%s/answer"><input type="hidden" name="interaction_id" value=%q/><input type="hidden" name="option" value="%d"/><button class=%q type="submit">%s</button></form>`,
				templ.EscapeString(string(game.ID)), templ.EscapeString(q.InteractionID), i,
				class, templ.EscapeString(option)))
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// PowerPromptModal renders the pre-question power offer. The question only
// opens once the prompt is spent or declined.
func PowerPromptModal(game *model.Game, language string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		prompt := game.PowerPrompt
		if prompt == nil {
			return nil
		}
		var b strings.Builder
		b.WriteString(`<div id="powers" class="modal powers">`)
		b.WriteString(fmt.Sprintf(`<h3>%s</h3>`, templ.EscapeString(i18n.T(language, "use_power"))))
		for _, power := range prompt.Powers {
			info := model.PowerCatalogue[power]
			b.WriteString(fmt.Sprintf(
				`<form method="post" action="/game/%s/power"><input type="hidden" name="player_id" value="%d"/><input type="hidden" name="power" value=%q/><button type="submit" title=%q>%s</button></form>`,
				templ.EscapeString(string(game.ID)), game.Current().ID,
				templ.EscapeString(string(power)), templ.EscapeString(info.Description),
				templ.EscapeString(info.Name)))
		}
		b.WriteString(fmt.Sprintf(
			`<form method="post" action="/game/%s/power/decline"><input type="hidden" name="interaction_id" value=%q/><button type="submit">%s</button></form>`,
			templ.EscapeString(string(game.ID)), templ.EscapeString(prompt.InteractionID),
			templ.EscapeString(i18n.T(language, "keep_powers"))))
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// EventModal renders the open special event
func EventModal(game *model.Game, language string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		e := game.SpecialEvent
		if e == nil {
			return nil
		}
		var b strings.Builder
		b.WriteString(`<div id="event" class="modal event">`)
		b.WriteString(fmt.Sprintf(`<h3>✨ %s</h3>`, templ.EscapeString(e.Event.Name)))
		b.WriteString(fmt.Sprintf(`<p>%s</p>`, templ.EscapeString(e.Event.Description)))
		if e.EffectVisible {
			b.WriteString(fmt.Sprintf(
				`<form method="post" action="/game/%s/event"><input type="hidden" name="interaction_id" value=%q/><button class="primary" type="submit">%s</button></form>`,
				templ.EscapeString(string(game.ID)), templ.EscapeString(e.InteractionID),
				templ.EscapeString(i18n.T(language, "continue"))))
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// History renders the rolling chronicle
func History(game *model.Game, language string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="history" class="history">`)
		b.WriteString(fmt.Sprintf(`<h2>%s</h2><ul>`, templ.EscapeString(i18n.T(language, "history"))))
		for i := len(game.History) - 1; i >= 0; i-- {
			b.WriteString(fmt.Sprintf(`<li>%s</li>`, templ.EscapeString(game.History[i])))
		}
		b.WriteString(`</ul></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// VictoryPanel renders the end-of-game banner
func VictoryPanel(game *model.Game, language string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		winner := game.PlayerByID(game.Winner)
		if winner == nil {
			return nil
		}
		var b strings.Builder
		b.WriteString(`<div id="victory" class="modal victory">`)
		b.WriteString(fmt.Sprintf(`<h2>🏆 %s</h2>`, templ.EscapeString(i18n.T(language, "victory"))))
		b.WriteString(fmt.Sprintf(`<p>%s %s</p>`,
			templ.EscapeString(winner.Icon), templ.EscapeString(winner.DisplayName())))
		b.WriteString(fmt.Sprintf(
			`<form method="post" action="/game/%s/reset"><button class="primary" type="submit">%s</button></form>`,
			templ.EscapeString(string(game.ID)), templ.EscapeString(i18n.T(language, "play_again"))))
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
