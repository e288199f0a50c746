package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmesquita/olimpicos/internal/dependencies/clock"
	"github.com/dmesquita/olimpicos/internal/dependencies/random"
	"github.com/dmesquita/olimpicos/internal/dependencies/scheduler"
	"github.com/dmesquita/olimpicos/internal/model"
	"github.com/dmesquita/olimpicos/internal/services/board"
	"github.com/dmesquita/olimpicos/internal/services/question"
	"github.com/dmesquita/olimpicos/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Notifier receives a notification after every committed state change so
// connected clients can be pushed the new snapshot
type Notifier interface {
	Notify(notification model.Notification)
}

// Controller owns the turn state machine. All mutations of a game run under
// that game's lock, so intents and timer callbacks apply strictly one at a
// time in arrival order.
type Controller struct {
	storage         storage.Storage
	boardService    *board.Service
	questionService *question.Service
	scheduler       scheduler.Scheduler
	clock           clock.Clock
	random          random.Random
	logger          *slog.Logger
	cfg             Config

	notifier Notifier

	mu        sync.Mutex
	gameLocks map[model.GameID]*sync.Mutex
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	questionService *question.Service,
	sched scheduler.Scheduler,
	clock clock.Clock,
	random random.Random,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:         storage,
		boardService:    boardService,
		questionService: questionService,
		scheduler:       sched,
		clock:           clock,
		random:          random,
		logger:          logger,
		cfg:             cfg,
		gameLocks:       make(map[model.GameID]*sync.Mutex),
	}
}

// SetNotifier installs the push hook. Called once during wiring.
func (c *Controller) SetNotifier(n Notifier) {
	c.notifier = n
}

// Task IDs are keyed by the interaction they belong to so a superseded
// interaction's timer can be cancelled instead of firing against later state.

func rollTask(id model.GameID) scheduler.TaskID {
	return scheduler.TaskID("roll:" + string(id))
}

func spaceTask(id model.GameID) scheduler.TaskID {
	return scheduler.TaskID("space:" + string(id))
}

func questionTask(id model.GameID) scheduler.TaskID {
	return scheduler.TaskID("question:" + string(id))
}

func revealTask(id model.GameID) scheduler.TaskID {
	return scheduler.TaskID("reveal:" + string(id))
}

func endTask(id model.GameID) scheduler.TaskID {
	return scheduler.TaskID("end:" + string(id))
}

func (c *Controller) cancelTasks(id model.GameID) {
	c.scheduler.Cancel(rollTask(id))
	c.scheduler.Cancel(spaceTask(id))
	c.scheduler.Cancel(questionTask(id))
	c.scheduler.Cancel(revealTask(id))
	c.scheduler.Cancel(endTask(id))
}

func (c *Controller) lockFor(id model.GameID) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.gameLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		c.gameLocks[id] = lock
	}
	return lock
}

// mutate runs fn against the stored game under the game's lock and saves the
// result. fn returning an empty notification type means nothing changed; the
// game is not saved and no notification goes out. Intents arriving in a phase
// where they do not apply are ignored this way rather than erroring.
func (c *Controller) mutate(ctx context.Context, gameID model.GameID, fn func(g *model.Game) (model.NotificationType, error)) error {
	lock := c.lockFor(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	note, err := fn(game)
	if err != nil {
		return err
	}
	if note == "" {
		return nil
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return err
	}

	c.notify(note, gameID)
	return nil
}

func (c *Controller) notify(t model.NotificationType, gameID model.GameID) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(model.Notification{
		Type:      t,
		GameID:    gameID,
		Timestamp: c.clock.Now(),
	})
}

// CreateGame initializes a new game in the setup phase with the default roster
func (c *Controller) CreateGame(ctx context.Context) (*model.Game, error) {
	now := c.clock.Now()
	gameID := model.GameID(c.random.String(6, gameIDAlphabet))

	game := &model.Game{
		ID:    gameID,
		Phase: model.PhaseSetup,
		Players: []model.Player{
			model.NewPlayer(1, model.Archetypes[0]),
			model.NewPlayer(2, model.Archetypes[1]),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created", slog.String("game_id", string(gameID)))
	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// AddPlayer adds a player with the first unused archetype. Setup phase only;
// ignored when the roster is full.
func (c *Controller) AddPlayer(ctx context.Context, gameID model.GameID) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.Phase != model.PhaseSetup || len(g.Players) >= model.MaxPlayers {
			return "", nil
		}

		used := make(map[string]bool, len(g.Players))
		maxID := model.PlayerID(0)
		for _, p := range g.Players {
			used[p.Name] = true
			if p.ID > maxID {
				maxID = p.ID
			}
		}

		for _, a := range model.Archetypes {
			if !used[a.Name] {
				g.Players = append(g.Players, model.NewPlayer(maxID+1, a))
				return model.NotifyGameUpdate, nil
			}
		}
		return "", nil
	})
}

// RemovePlayer removes a player during setup. Ignored when the roster is
// already at the minimum.
func (c *Controller) RemovePlayer(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.Phase != model.PhaseSetup || len(g.Players) <= model.MinPlayers {
			return "", nil
		}
		for i := range g.Players {
			if g.Players[i].ID == playerID {
				g.Players = append(g.Players[:i], g.Players[i+1:]...)
				return model.NotifyGameUpdate, nil
			}
		}
		return "", nil
	})
}

// SetArchetype switches a player to another archetype during setup. Ignored
// if the archetype is unknown or already taken by another player.
func (c *Controller) SetArchetype(ctx context.Context, gameID model.GameID, playerID model.PlayerID, name string) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.Phase != model.PhaseSetup {
			return "", nil
		}
		archetype := model.ArchetypeByName(name)
		if archetype == nil {
			return "", nil
		}
		for i := range g.Players {
			if g.Players[i].Name == name && g.Players[i].ID != playerID {
				return "", nil
			}
		}
		p := g.PlayerByID(playerID)
		if p == nil {
			return "", nil
		}
		p.Name = archetype.Name
		p.Icon = archetype.Icon
		p.Color = archetype.Color
		p.BgColor = archetype.BgColor
		return model.NotifyGameUpdate, nil
	})
}

// SetCustomName sets a player's display name during setup
func (c *Controller) SetCustomName(ctx context.Context, gameID model.GameID, playerID model.PlayerID, name string) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.Phase != model.PhaseSetup {
			return "", nil
		}
		p := g.PlayerByID(playerID)
		if p == nil {
			return "", nil
		}
		p.CustomName = name
		return model.NotifyGameUpdate, nil
	})
}

// StartGame moves the game from setup to playing
func (c *Controller) StartGame(ctx context.Context, gameID model.GameID) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.Phase != model.PhaseSetup || len(g.Players) < model.MinPlayers {
			return "", nil
		}
		g.Phase = model.PhasePlaying
		g.StartedAt = c.clock.Now()
		g.AppendHistory("A jornada começou! Que os deuses os acompanhem!")

		c.logger.Info("game started",
			slog.String("game_id", string(gameID)),
			slog.Int("player_count", len(g.Players)),
		)
		return model.NotifyGameUpdate, nil
	})
}

// RollDice starts the current player's dice roll. If the player is holding
// Skip Turn it is consumed instead and the turn passes without a roll.
func (c *Controller) RollDice(ctx context.Context, gameID model.GameID) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		if !g.CanRoll() {
			return "", nil
		}

		p := g.Current()

		// The round counter follows rolls. It wraps when the last roster
		// player starts acting; turn advances from answers or events never
		// touch it.
		if g.CurrentPlayer == len(g.Players)-1 {
			g.TurnCount++
		}

		if p.ConsumePower(model.PowerSkipTurn) {
			g.AppendHistory(fmt.Sprintf("%s perdeu o turno preso no Labirinto!", p.DisplayName()))
			c.endTurn(g)
			return model.NotifyGameUpdate, nil
		}

		g.IsRolling = true
		// The roll-time draw counts as the first animation tick
		g.RollTicksLeft = c.cfg.RollTicks - 1
		g.DiceValue = 1 + c.random.Intn(6)

		c.scheduler.Schedule(rollTask(gameID), c.cfg.RollTickInterval, func() {
			c.rollTick(gameID)
		})
		return model.NotifyDiceTick, nil
	})
}

// rollTick advances the dice animation. The interim values are draws of their
// own; the final value is an independent draw, not the last interim one.
func (c *Controller) rollTick(gameID model.GameID) {
	err := c.mutate(context.Background(), gameID, func(g *model.Game) (model.NotificationType, error) {
		if !g.IsRolling {
			return "", nil
		}

		g.RollTicksLeft--
		if g.RollTicksLeft > 0 {
			g.DiceValue = 1 + c.random.Intn(6)
			c.scheduler.Schedule(rollTask(gameID), c.cfg.RollTickInterval, func() {
				c.rollTick(gameID)
			})
			return model.NotifyDiceTick, nil
		}

		g.DiceValue = 1 + c.random.Intn(6)
		g.IsRolling = false

		p := g.Current()
		target := p.Position + g.DiceValue
		if target > model.BoardLength-1 {
			target = model.BoardLength - 1
		}
		p.Position = target
		g.AppendHistory(fmt.Sprintf("%s tirou %d e avançou para a casa %d!", p.DisplayName(), g.DiceValue, target+1))

		if winnerID, vt, won := evaluateVictory(g.Players); won {
			c.scheduler.Schedule(endTask(gameID), c.cfg.VictoryDelayMove, func() {
				c.finishGame(gameID, winnerID, vt)
			})
			return model.NotifyGameUpdate, nil
		}

		g.PendingSpaceAction = true
		c.scheduler.Schedule(spaceTask(gameID), c.cfg.SpaceActionDelay, func() {
			c.resolveSpaceAction(gameID)
		})
		return model.NotifyGameUpdate, nil
	})
	if err != nil {
		c.logger.Error("roll tick failed",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
	}
}

// resolveSpaceAction opens the action of the space the current player landed
// on: a question for theme spaces, an event for special spaces, nothing for
// the start space.
func (c *Controller) resolveSpaceAction(gameID model.GameID) {
	err := c.mutate(context.Background(), gameID, func(g *model.Game) (model.NotificationType, error) {
		if !g.PendingSpaceAction {
			return "", nil
		}
		g.PendingSpaceAction = false

		p := g.Current()
		space := c.boardService.SpaceAt(p.Position)

		switch space.Type {
		case model.SpaceTheme:
			return c.openChallenge(g, p, space.Theme)

		case model.SpaceSpecial:
			event := model.EventForSpace(space.Index)
			g.SpecialEvent = &model.OpenSpecialEvent{
				InteractionID: uuid.NewString(),
				SpaceIndex:    space.Index,
				Event:         event,
			}
			g.AppendHistory(fmt.Sprintf("%s ativou o evento %s!", p.DisplayName(), event.Name))
			c.scheduler.Schedule(revealTask(gameID), c.cfg.EffectRevealDelay, func() {
				c.revealEventEffect(gameID)
			})
			return model.NotifySpecialEvent, nil

		default:
			c.endTurn(g)
			return model.NotifyGameUpdate, nil
		}
	})
	if err != nil {
		c.logger.Error("space action failed",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
	}
}

// openChallenge starts the theme-space challenge. A player holding question
// powers is offered them first; the question itself only opens, and its
// countdown only starts, once the prompt is resolved. At most one
// sub-interaction is ever open.
func (c *Controller) openChallenge(g *model.Game, p *model.Player, theme model.Theme) (model.NotificationType, error) {
	if powers := p.QuestionPowers(); len(powers) > 0 {
		g.Phase = model.PhaseQuestion
		g.PowerPrompt = &model.PowerPrompt{
			InteractionID: uuid.NewString(),
			Context:       model.PowerContextQuestion,
			Powers:        powers,
		}
		return model.NotifyPowerPrompt, nil
	}
	return c.openQuestion(g, p, theme)
}

// openQuestion opens a trivia question for the theme, tiered to the player's
// artifact count. When the catalogue has nothing for the theme the challenge
// is skipped and the turn passes.
func (c *Controller) openQuestion(g *model.Game, p *model.Player, theme model.Theme) (model.NotificationType, error) {
	difficulty := question.DifficultyFor(len(p.Artifacts))
	q, err := c.questionService.Pick(c.random, theme, difficulty)
	if err != nil {
		g.AppendHistory(fmt.Sprintf("Sem perguntas de %s; %s segue viagem.", theme, p.DisplayName()))
		g.Phase = model.PhasePlaying
		c.endTurn(g)
		return model.NotifyGameUpdate, nil
	}

	g.Phase = model.PhaseQuestion
	g.Question = &model.OpenQuestion{
		InteractionID: uuid.NewString(),
		Question:      q,
		TimeLimit:     int(question.TimeLimit(q.Difficulty).Seconds()),
		OpenedAt:      c.clock.Now(),
	}
	c.scheduleQuestionTimeout(g.ID, g.Question)
	return model.NotifyQuestion, nil
}

// scheduleQuestionTimeout (re)arms the answer deadline at OpenedAt plus the
// question's current time limit
func (c *Controller) scheduleQuestionTimeout(gameID model.GameID, q *model.OpenQuestion) {
	interactionID := q.InteractionID
	remaining := time.Duration(q.TimeLimit)*time.Second - c.clock.Now().Sub(q.OpenedAt)
	if remaining < 0 {
		remaining = 0
	}
	c.scheduler.Schedule(questionTask(gameID), remaining, func() {
		c.questionTimeout(gameID, interactionID)
	})
}

// AnswerQuestion applies the current player's answer to the open question
func (c *Controller) AnswerQuestion(ctx context.Context, gameID model.GameID, interactionID string, option int) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.Phase != model.PhaseQuestion || g.Question == nil || g.Question.InteractionID != interactionID {
			return "", nil
		}

		c.scheduler.Cancel(questionTask(gameID))

		q := g.Question.Question
		p := g.Current()

		if option == q.CorrectIdx {
			if p.GrantArtifact(q.Theme) {
				g.AppendHistory(fmt.Sprintf("%s acertou e conquistou o artefato %s de %s!",
					p.DisplayName(), model.ThemeArtifacts[q.Theme], q.Theme))
			} else {
				g.AppendHistory(fmt.Sprintf("%s acertou, mas já possuía o artefato de %s.",
					p.DisplayName(), q.Theme))
			}
		} else {
			g.AppendHistory(fmt.Sprintf("%s errou a pergunta de %s.", p.DisplayName(), q.Theme))
		}

		g.Question = nil
		g.Phase = model.PhasePlaying

		if winnerID, vt, won := evaluateVictory(g.Players); won {
			c.scheduler.Schedule(endTask(gameID), c.cfg.VictoryDelayAnswer, func() {
				c.finishGame(gameID, winnerID, vt)
			})
			return model.NotifyGameUpdate, nil
		}

		c.endTurn(g)
		return model.NotifyGameUpdate, nil
	})
}

// questionTimeout closes an unanswered question as a miss
func (c *Controller) questionTimeout(gameID model.GameID, interactionID string) {
	err := c.mutate(context.Background(), gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.Phase != model.PhaseQuestion || g.Question == nil || g.Question.InteractionID != interactionID {
			return "", nil
		}

		p := g.Current()
		g.AppendHistory(fmt.Sprintf("%s não respondeu a tempo!", p.DisplayName()))

		g.Question = nil
		g.Phase = model.PhasePlaying
		c.endTurn(g)
		return model.NotifyGameUpdate, nil
	})
	if err != nil {
		c.logger.Error("question timeout failed",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
	}
}

// revealEventEffect flips the open event's effect text visible
func (c *Controller) revealEventEffect(gameID model.GameID) {
	err := c.mutate(context.Background(), gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.SpecialEvent == nil || g.SpecialEvent.EffectVisible {
			return "", nil
		}
		g.SpecialEvent.EffectVisible = true
		return model.NotifyEffectReveal, nil
	})
	if err != nil {
		c.logger.Error("effect reveal failed",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
	}
}

// ResolveSpecialEvent applies the open event's effects and passes the turn
func (c *Controller) ResolveSpecialEvent(ctx context.Context, gameID model.GameID, interactionID string) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.SpecialEvent == nil || g.SpecialEvent.InteractionID != interactionID {
			return "", nil
		}

		c.scheduler.Cancel(revealTask(gameID))

		effects := g.SpecialEvent.Event.Effects
		g.SpecialEvent = nil

		p := g.Current()
		c.applyEventEffects(g, p, effects)

		if winnerID, vt, won := evaluateVictory(g.Players); won {
			c.scheduler.Schedule(endTask(gameID), c.cfg.VictoryDelayMove, func() {
				c.finishGame(gameID, winnerID, vt)
			})
			return model.NotifyGameUpdate, nil
		}

		c.endTurn(g)
		return model.NotifyGameUpdate, nil
	})
}

// applyEventEffects applies an event's effect bundle to the player in a fixed
// order: power grant, movement, teleport, extra turn. A held Shield is a
// keepsake; it never alters an effect.
func (c *Controller) applyEventEffects(g *model.Game, p *model.Player, effects model.EventEffects) {
	name := p.DisplayName()
	message := fmt.Sprintf("%s %s", name, effects.Message)

	if effects.Power != "" {
		p.GrantPower(effects.Power)
	}

	if effects.Movement != 0 {
		target := p.Position + effects.Movement
		if target < 0 {
			target = 0
		}
		if target > model.BoardLength-1 {
			target = model.BoardLength - 1
		}
		p.Position = target
		message = fmt.Sprintf("%s %s Agora está na casa %d.", name, effects.Message, target+1)
	}

	if effects.Teleport {
		if target := c.boardService.NextSameTheme(p.Position); target >= 0 {
			p.Position = target
			message = fmt.Sprintf("%s %s Voou para a casa %d!", name, effects.Message, target+1)
		} else {
			message = fmt.Sprintf("%s tentou o Atalho de Hermes, mas o caminho estava fechado.", name)
		}
	}

	if effects.ExtraTurn {
		g.ExtraTurnPending = true
	}

	g.AppendHistory(message)
}

// ActivatePower spends one of the current player's question powers, either at
// the pre-question prompt or against the question already open. Anything else
// is ignored.
func (c *Controller) ActivatePower(ctx context.Context, gameID model.GameID, playerID model.PlayerID, power model.PowerID) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		p := g.PlayerByID(playerID)
		if p == nil || playerID != g.Current().ID {
			return "", nil
		}
		if g.Phase != model.PhaseQuestion || !model.PowerUsableIn(power, model.PowerContextQuestion) {
			return "", nil
		}

		if g.Question != nil {
			return c.applyQuestionPower(g, p, power)
		}
		if g.PowerPrompt != nil && g.PowerPrompt.Context == model.PowerContextQuestion {
			return c.spendPromptPower(g, p, power)
		}
		return "", nil
	})
}

// spendPromptPower resolves the pre-question prompt: the chosen power is
// consumed and the question opens with its effect already applied
func (c *Controller) spendPromptPower(g *model.Game, p *model.Player, power model.PowerID) (model.NotificationType, error) {
	if !p.ConsumePower(power) {
		return "", nil
	}
	g.PowerPrompt = nil

	theme := c.boardService.SpaceAt(p.Position).Theme
	note, err := c.openQuestion(g, p, theme)
	if err != nil || g.Question == nil {
		return note, err
	}
	q := g.Question

	switch power {
	case model.PowerFiftyFifty:
		c.hideWrongOptions(q)
		g.AppendHistory(fmt.Sprintf("%s consultou o Oráculo (50/50)!", p.DisplayName()))
	case model.PowerTimeFreeze:
		q.TimeLimit *= 2
		c.scheduleQuestionTimeout(g.ID, q)
		g.AppendHistory(fmt.Sprintf("%s congelou o tempo!", p.DisplayName()))
	case model.PowerDivineInsight:
		q.RevealCorrect = true
		g.AppendHistory(fmt.Sprintf("%s recebeu a Visão Divina!", p.DisplayName()))
	}
	return note, nil
}

func (c *Controller) applyQuestionPower(g *model.Game, p *model.Player, power model.PowerID) (model.NotificationType, error) {
	q := g.Question

	switch power {
	case model.PowerFiftyFifty:
		if len(q.HiddenOptions) > 0 {
			return "", nil
		}
		if !p.ConsumePower(power) {
			return "", nil
		}
		c.hideWrongOptions(q)
		g.AppendHistory(fmt.Sprintf("%s consultou o Oráculo (50/50)!", p.DisplayName()))

	case model.PowerTimeFreeze:
		if !p.ConsumePower(power) {
			return "", nil
		}
		q.TimeLimit *= 2
		c.scheduleQuestionTimeout(g.ID, q)
		g.AppendHistory(fmt.Sprintf("%s congelou o tempo!", p.DisplayName()))

	case model.PowerDivineInsight:
		if q.RevealCorrect {
			return "", nil
		}
		if !p.ConsumePower(power) {
			return "", nil
		}
		q.RevealCorrect = true
		g.AppendHistory(fmt.Sprintf("%s recebeu a Visão Divina!", p.DisplayName()))

	default:
		return "", nil
	}

	return model.NotifyGameUpdate, nil
}

// hideWrongOptions removes all but one wrong option, keeping the correct one
// and a random distractor visible
func (c *Controller) hideWrongOptions(q *model.OpenQuestion) {
	var wrong []int
	for i := range q.Question.Options {
		if i != q.Question.CorrectIdx {
			wrong = append(wrong, i)
		}
	}
	keep := c.random.Intn(len(wrong))
	for i, idx := range wrong {
		if i != keep {
			q.HiddenOptions = append(q.HiddenOptions, idx)
		}
	}
}

// DeclinePowers dismisses an open power prompt. Declining the pre-question
// prompt opens the question unmodified.
func (c *Controller) DeclinePowers(ctx context.Context, gameID model.GameID, interactionID string) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.PowerPrompt == nil || g.PowerPrompt.InteractionID != interactionID {
			return "", nil
		}
		prompt := g.PowerPrompt
		g.PowerPrompt = nil

		if prompt.Context == model.PowerContextQuestion && g.Phase == model.PhaseQuestion && g.Question == nil {
			p := g.Current()
			return c.openQuestion(g, p, c.boardService.SpaceAt(p.Position).Theme)
		}
		return model.NotifyGameUpdate, nil
	})
}

// endTurn passes the turn unless an extra turn is pending
func (c *Controller) endTurn(g *model.Game) {
	if g.ExtraTurnPending {
		g.ExtraTurnPending = false
		return
	}
	g.AdvancePlayer()
}

// finishGame records the victory and ends the game
func (c *Controller) finishGame(gameID model.GameID, winnerID model.PlayerID, vt model.VictoryType) {
	err := c.mutate(context.Background(), gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.Phase == model.PhaseEnded {
			return "", nil
		}

		g.Phase = model.PhaseEnded
		g.Winner = winnerID
		g.VictoryType = vt

		w := g.PlayerByID(winnerID)
		name := "?"
		if w != nil {
			name = w.DisplayName()
		}
		switch vt {
		case model.VictoryArtifacts:
			g.AppendHistory(fmt.Sprintf("%s reuniu todos os artefatos e venceu!", name))
		case model.VictoryFinish:
			g.AppendHistory(fmt.Sprintf("%s chegou ao Monte Olimpo e venceu!", name))
		case model.VictoryTimeout:
			g.AppendHistory(fmt.Sprintf("O tempo acabou! %s venceu com mais artefatos!", name))
		}

		c.cancelTasks(gameID)

		c.logger.Info("game ended",
			slog.String("game_id", string(gameID)),
			slog.Int("winner", int(winnerID)),
			slog.String("victory", string(vt)),
		)
		return model.NotifyGameEnded, nil
	})
	if err != nil {
		c.logger.Error("finish game failed",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
	}
}

// EndByTimeout ends a running game immediately, awarding the artifact leader
func (c *Controller) EndByTimeout(ctx context.Context, gameID model.GameID) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		if g.Phase != model.PhasePlaying && g.Phase != model.PhaseQuestion {
			return "", nil
		}

		c.cancelTasks(gameID)

		g.Phase = model.PhaseEnded
		g.Winner = timeoutWinner(g.Players)
		g.VictoryType = model.VictoryTimeout
		g.Question = nil
		g.SpecialEvent = nil
		g.PowerPrompt = nil
		g.IsRolling = false
		g.PendingSpaceAction = false

		w := g.PlayerByID(g.Winner)
		g.AppendHistory(fmt.Sprintf("O tempo acabou! %s venceu com mais artefatos!", w.DisplayName()))
		return model.NotifyGameEnded, nil
	})
}

// ResetGame returns a game to the setup phase with a fresh default roster
func (c *Controller) ResetGame(ctx context.Context, gameID model.GameID) error {
	return c.mutate(ctx, gameID, func(g *model.Game) (model.NotificationType, error) {
		c.cancelTasks(gameID)

		created := g.CreatedAt
		*g = model.Game{
			ID:    gameID,
			Phase: model.PhaseSetup,
			Players: []model.Player{
				model.NewPlayer(1, model.Archetypes[0]),
				model.NewPlayer(2, model.Archetypes[1]),
			},
			CreatedAt: created,
		}

		c.logger.Info("game reset", slog.String("game_id", string(gameID)))
		return model.NotifyGameReset, nil
	})
}

// DeleteGame removes a game and cancels anything it had pending
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	lock := c.lockFor(gameID)
	lock.Lock()
	defer lock.Unlock()

	c.cancelTasks(gameID)

	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.gameLocks, gameID)
	c.mu.Unlock()

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	AddPlayer(ctx context.Context, gameID model.GameID) error
	RemovePlayer(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	SetArchetype(ctx context.Context, gameID model.GameID, playerID model.PlayerID, name string) error
	SetCustomName(ctx context.Context, gameID model.GameID, playerID model.PlayerID, name string) error
	StartGame(ctx context.Context, gameID model.GameID) error
	RollDice(ctx context.Context, gameID model.GameID) error
	AnswerQuestion(ctx context.Context, gameID model.GameID, interactionID string, option int) error
	ResolveSpecialEvent(ctx context.Context, gameID model.GameID, interactionID string) error
	ActivatePower(ctx context.Context, gameID model.GameID, playerID model.PlayerID, power model.PowerID) error
	DeclinePowers(ctx context.Context, gameID model.GameID, interactionID string) error
	EndByTimeout(ctx context.Context, gameID model.GameID) error
	ResetGame(ctx context.Context, gameID model.GameID) error
	DeleteGame(ctx context.Context, gameID model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
