// Package pages assembles the site's full pages from layout and components.
package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmesquita/olimpicos/internal/i18n"
	"github.com/dmesquita/olimpicos/internal/model"
	"github.com/dmesquita/olimpicos/internal/web/templates/components"
	"github.com/dmesquita/olimpicos/internal/web/templates/layout"
)

// HomeData carries what the home page needs
type HomeData struct {
	layout.PageData
}

// Home renders the landing page
func Home(data HomeData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="home">`)
		b.WriteString(fmt.Sprintf(`<h1>%s</h1><p class="subtitle">%s</p>`,
			templ.EscapeString(i18n.T(data.Language, "title")),
			templ.EscapeString(i18n.T(data.Language, "subtitle"))))

		b.WriteString(fmt.Sprintf(
			`<form method="post" action="/game"><button class="primary" type="submit">%s</button></form>`,
			templ.EscapeString(i18n.T(data.Language, "new_game"))))

		b.WriteString(fmt.Sprintf(
			`<form class="join" method="get" action="/game"><label>%s</label><input type="text" name="id" maxlength="6" required/><button type="submit">%s</button></form>`,
			templ.EscapeString(i18n.T(data.Language, "game_id")),
			templ.EscapeString(i18n.T(data.Language, "join_game"))))

		b.WriteString(languageToggle(data.Language))
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return layout.Base(data.PageData, content)
}

// GameData carries what the game page needs
type GameData struct {
	layout.PageData

	Game  *model.Game
	Board *model.Board
}

// Game renders the full game page, including the SSE wiring that keeps the
// game root in sync with server-side state changes
func Game(data GameData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div hx-ext="sse" sse-connect="/game/%s/events">`,
			templ.EscapeString(string(data.Game.ID))); err != nil {
			return err
		}

		if err := GameRoot(data).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</div>`)
		return err
	})
	return layout.Base(data.PageData, content)
}

// sseTriggers lists every push event that should refresh the game root
var sseTriggers = strings.Join([]string{
	"sse:" + string(model.NotifyGameUpdate),
	"sse:" + string(model.NotifyDiceTick),
	"sse:" + string(model.NotifyQuestion),
	"sse:" + string(model.NotifySpecialEvent),
	"sse:" + string(model.NotifyEffectReveal),
	"sse:" + string(model.NotifyPowerPrompt),
	"sse:" + string(model.NotifyGameEnded),
	"sse:" + string(model.NotifyGameReset),
}, ", ")

// GameRoot renders the refreshable portion of the game page. It is served on
// its own for htmx swaps triggered by SSE events.
func GameRoot(data GameData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div id="game-root" class="game phase-%s" hx-get="/game/%s/root" hx-trigger="%s" hx-swap="outerHTML">`,
			templ.EscapeString(string(data.Game.Phase)),
			templ.EscapeString(string(data.Game.ID)),
			sseTriggers); err != nil {
			return err
		}

		game := data.Game
		parts := []templ.Component{
			components.PlayerList(game, data.Language),
			components.Board(data.Board, game),
		}

		switch {
		case game.Phase == model.PhaseSetup:
			parts = append(parts, components.SetupPanel(game, data.Language))
		case game.Phase == model.PhaseEnded:
			parts = append(parts, components.VictoryPanel(game, data.Language))
		default:
			parts = append(parts, components.DicePanel(game, data.Language))
			if game.Question != nil {
				parts = append(parts, components.QuestionModal(game, data.Language))
			}
			if game.PowerPrompt != nil {
				parts = append(parts, components.PowerPromptModal(game, data.Language))
			}
			if game.SpecialEvent != nil {
				parts = append(parts, components.EventModal(game, data.Language))
			}
		}
		parts = append(parts, components.History(game, data.Language))

		for _, part := range parts {
			if err := part.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func languageToggle(language string) string {
	var b strings.Builder
	b.WriteString(`<form class="language" method="post" action="/language">`)
	b.WriteString(fmt.Sprintf(`<label>%s</label><select name="language" onchange="this.form.submit()">`,
		templ.EscapeString(i18n.T(language, "language"))))
	for _, code := range i18n.SupportedLanguages() {
		selected := ""
		if code == language {
			selected = " selected"
		}
		b.WriteString(fmt.Sprintf(`<option value=%q%s>%s</option>`,
			templ.EscapeString(code), selected, templ.EscapeString(languageName(code))))
	}
	b.WriteString(`</select></form>`)
	return b.String()
}

func languageName(code string) string {
	if code == "en" {
		return "English"
	}
	return "Português"
}
