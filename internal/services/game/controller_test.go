package game

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dmesquita/olimpicos/internal/dependencies/mocks"
	"github.com/dmesquita/olimpicos/internal/model"
	"github.com/dmesquita/olimpicos/internal/services/board"
	"github.com/dmesquita/olimpicos/internal/services/question"
	"github.com/dmesquita/olimpicos/internal/storage/memory"
)

// recordingNotifier captures pushed notifications for assertions
type recordingNotifier struct {
	mu    sync.Mutex
	notes []model.Notification
}

func (n *recordingNotifier) Notify(notification model.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, notification)
}

func (n *recordingNotifier) types() []model.NotificationType {
	n.mu.Lock()
	defer n.mu.Unlock()
	types := make([]model.NotificationType, len(n.notes))
	for i, note := range n.notes {
		types[i] = note.Type
	}
	return types
}

type GameControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	controller *Controller
	scheduler  *mocks.MockScheduler
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	notifier   *recordingNotifier
	ctx        context.Context
}

func TestGameControllerSuite(t *testing.T) {
	suite.Run(t, new(GameControllerSuite))
}

func (s *GameControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.scheduler = mocks.NewMockScheduler()
	s.clock = mocks.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.notifier = &recordingNotifier{}
	s.ctx = context.Background()

	questionService := question.New(s.storage)
	s.Require().NoError(questionService.LoadQuestions(testCatalogue()))

	cfg := DefaultConfig()
	cfg.RollTicks = 3

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.controller = NewController(
		s.storage,
		board.New(),
		questionService,
		s.scheduler,
		s.clock,
		s.random,
		cfg,
		logger,
	)
	s.controller.SetNotifier(s.notifier)
}

// testCatalogue returns one easy question per theme
func testCatalogue() []model.Question {
	var questions []model.Question
	for i, theme := range model.Themes {
		questions = append(questions, model.Question{
			ID:         i + 1,
			Theme:      theme,
			Difficulty: model.DifficultyEasy,
			Prompt:     "?",
			Options:    []string{"a", "b", "c", "d"},
			CorrectIdx: 1,
		})
	}
	return questions
}

func (s *GameControllerSuite) newGame() *model.Game {
	s.random.QueueString("GAME1")
	game, err := s.controller.CreateGame(s.ctx)
	s.Require().NoError(err)
	return game
}

func (s *GameControllerSuite) startedGame() *model.Game {
	game := s.newGame()
	s.Require().NoError(s.controller.StartGame(s.ctx, game.ID))
	return s.load(game.ID)
}

func (s *GameControllerSuite) load(id model.GameID) *model.Game {
	game, err := s.storage.GetGame(s.ctx, id)
	s.Require().NoError(err)
	return game
}

func (s *GameControllerSuite) save(game *model.Game) {
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
}

// Setup phase

func (s *GameControllerSuite) TestCreateGameDefaults() {
	game := s.newGame()

	s.Equal(model.GameID("GAME1"), game.ID)
	s.Equal(model.PhaseSetup, game.Phase)
	s.Require().Len(game.Players, 2)
	s.Equal("Hoplita", game.Players[0].Name)
	s.Equal("Filósofo", game.Players[1].Name)
	s.Equal(model.PlayerID(1), game.Players[0].ID)
	s.Equal(model.PlayerID(2), game.Players[1].ID)
}

func (s *GameControllerSuite) TestAddPlayerPicksUnusedArchetype() {
	game := s.newGame()

	s.Require().NoError(s.controller.AddPlayer(s.ctx, game.ID))
	game = s.load(game.ID)
	s.Require().Len(game.Players, 3)
	s.Equal("Sacerdotisa", game.Players[2].Name)
	s.Equal(model.PlayerID(3), game.Players[2].ID)
}

func (s *GameControllerSuite) TestAddPlayerRosterFull() {
	game := s.newGame()
	_ = s.controller.AddPlayer(s.ctx, game.ID)
	_ = s.controller.AddPlayer(s.ctx, game.ID)

	s.Require().NoError(s.controller.AddPlayer(s.ctx, game.ID))
	s.Len(s.load(game.ID).Players, model.MaxPlayers)
}

func (s *GameControllerSuite) TestRemovePlayerKeepsMinimum() {
	game := s.newGame()

	s.Require().NoError(s.controller.RemovePlayer(s.ctx, game.ID, 2))
	s.Len(s.load(game.ID).Players, 2, "removal below the minimum roster is ignored")

	_ = s.controller.AddPlayer(s.ctx, game.ID)
	s.Require().NoError(s.controller.RemovePlayer(s.ctx, game.ID, 2))

	game = s.load(game.ID)
	s.Require().Len(game.Players, 2)
	s.Equal(model.PlayerID(1), game.Players[0].ID)
	s.Equal(model.PlayerID(3), game.Players[1].ID)
}

func (s *GameControllerSuite) TestSetArchetype() {
	game := s.newGame()

	s.Require().NoError(s.controller.SetArchetype(s.ctx, game.ID, 1, "Poeta"))
	game = s.load(game.ID)
	s.Equal("Poeta", game.Players[0].Name)
	s.Equal("🎭", game.Players[0].Icon)
}

func (s *GameControllerSuite) TestSetArchetypeTakenIgnored() {
	game := s.newGame()

	s.Require().NoError(s.controller.SetArchetype(s.ctx, game.ID, 1, "Filósofo"))
	s.Equal("Hoplita", s.load(game.ID).Players[0].Name)
}

func (s *GameControllerSuite) TestSetCustomName() {
	game := s.newGame()

	s.Require().NoError(s.controller.SetCustomName(s.ctx, game.ID, 2, "Aristóteles"))
	game = s.load(game.ID)
	s.Equal("Aristóteles", game.Players[1].DisplayName())
	s.Equal("Filósofo", game.Players[1].Name)
}

func (s *GameControllerSuite) TestStartGame() {
	game := s.newGame()

	s.Require().NoError(s.controller.StartGame(s.ctx, game.ID))
	game = s.load(game.ID)
	s.Equal(model.PhasePlaying, game.Phase)
	s.Equal(s.clock.Now(), game.StartedAt)
	s.NotEmpty(game.History)
}

func (s *GameControllerSuite) TestStartGameTwiceIgnored() {
	game := s.startedGame()
	history := len(game.History)

	s.Require().NoError(s.controller.StartGame(s.ctx, game.ID))
	s.Len(s.load(game.ID).History, history)
}

// Dice rolls

func (s *GameControllerSuite) TestRollDiceAnimatesThenMoves() {
	game := s.startedGame()

	// First draw at roll, one interim tick draw, then the independent final draw
	s.random.QueueIntn(2, 0, 3)
	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))

	game = s.load(game.ID)
	s.True(game.IsRolling)
	s.Equal(3, game.DiceValue)

	s.True(s.scheduler.Fire(rollTask(game.ID)))
	game = s.load(game.ID)
	s.True(game.IsRolling)
	s.Equal(1, game.DiceValue)

	s.True(s.scheduler.Fire(rollTask(game.ID)))
	game = s.load(game.ID)
	s.False(game.IsRolling)
	s.Equal(4, game.DiceValue)
	s.Equal(4, game.Players[0].Position)
	s.True(game.PendingSpaceAction)
	s.True(s.scheduler.Pending(spaceTask(game.ID)))
}

func (s *GameControllerSuite) TestRollLandsOnThemeOpensQuestion() {
	game := s.startedGame()

	s.random.QueueIntn(0, 0, 3) // final dice 4, space 4 is a theme space
	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))
	s.scheduler.Fire(rollTask(game.ID))
	s.scheduler.Fire(rollTask(game.ID))
	s.scheduler.Fire(spaceTask(game.ID))

	game = s.load(game.ID)
	s.Equal(model.PhaseQuestion, game.Phase)
	s.Require().NotNil(game.Question)
	s.Equal(s.controller.boardService.SpaceAt(4).Theme, game.Question.Question.Theme)
	s.Equal(30, game.Question.TimeLimit)
	s.True(s.scheduler.Pending(questionTask(game.ID)))
}

func (s *GameControllerSuite) TestRollClampsAtFinishAndWins() {
	game := s.startedGame()
	game.Players[0].Position = 57
	s.save(game)

	s.random.QueueIntn(0, 0, 5) // final dice 6 would overshoot; clamps to 59
	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))
	s.scheduler.Fire(rollTask(game.ID))
	s.scheduler.Fire(rollTask(game.ID))

	game = s.load(game.ID)
	s.Equal(59, game.Players[0].Position)
	s.Equal(model.PhasePlaying, game.Phase, "victory lands after the pause")
	s.False(game.PendingSpaceAction)

	delay, ok := s.scheduler.Delay(endTask(game.ID))
	s.Require().True(ok)
	s.Equal(DefaultConfig().VictoryDelayMove, delay)

	s.scheduler.Fire(endTask(game.ID))
	game = s.load(game.ID)
	s.Equal(model.PhaseEnded, game.Phase)
	s.Equal(model.PlayerID(1), game.Winner)
	s.Equal(model.VictoryFinish, game.VictoryType)
}

func (s *GameControllerSuite) TestRollIgnoredDuringSetup() {
	game := s.newGame()

	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))
	s.False(s.load(game.ID).IsRolling)
	s.False(s.scheduler.Pending(rollTask(game.ID)))
}

func (s *GameControllerSuite) TestRollIgnoredWhileRolling() {
	game := s.startedGame()
	s.random.QueueIntn(2)
	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))

	before := s.load(game.ID).RollTicksLeft
	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))
	s.Equal(before, s.load(game.ID).RollTicksLeft)
}

func (s *GameControllerSuite) TestSkipTurnConsumedOnRoll() {
	game := s.startedGame()
	game.Players[0].Powers = []model.PowerID{model.PowerSkipTurn}
	s.save(game)

	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))

	game = s.load(game.ID)
	s.False(game.IsRolling)
	s.Empty(game.Players[0].Powers)
	s.Equal(1, game.CurrentPlayer)
	s.Contains(game.History[len(game.History)-1], "perdeu o turno")
}

// Questions

// openQuestionFor drives the current player onto a theme space and through
// the space action so a question is open.
func (s *GameControllerSuite) openQuestionFor(game *model.Game, position int) *model.Game {
	player := game.Current()
	player.Position = position
	game.PendingSpaceAction = true
	s.save(game)
	s.controller.resolveSpaceAction(game.ID)
	return s.load(game.ID)
}

func (s *GameControllerSuite) TestAnswerCorrectGrantsArtifact() {
	game := s.startedGame()
	game = s.openQuestionFor(game, 4)
	theme := game.Question.Question.Theme

	s.Require().NoError(s.controller.AnswerQuestion(s.ctx, game.ID, game.Question.InteractionID, 1))

	game = s.load(game.ID)
	s.Equal(model.PhasePlaying, game.Phase)
	s.Nil(game.Question)
	s.True(game.Players[0].HasArtifact(theme))
	s.Equal(1, game.CurrentPlayer)
	s.False(s.scheduler.Pending(questionTask(game.ID)))
}

func (s *GameControllerSuite) TestAnswerWrongNoArtifact() {
	game := s.startedGame()
	game = s.openQuestionFor(game, 4)

	s.Require().NoError(s.controller.AnswerQuestion(s.ctx, game.ID, game.Question.InteractionID, 0))

	game = s.load(game.ID)
	s.Empty(game.Players[0].Artifacts)
	s.Equal(1, game.CurrentPlayer)
}

func (s *GameControllerSuite) TestAnswerDuplicateArtifactNotStacked() {
	game := s.startedGame()
	theme := s.controller.boardService.SpaceAt(4).Theme
	game.Players[0].Artifacts = []model.Theme{theme}
	s.save(game)
	game = s.openQuestionFor(game, 4)

	s.Require().NoError(s.controller.AnswerQuestion(s.ctx, game.ID, game.Question.InteractionID, 1))
	s.Len(s.load(game.ID).Players[0].Artifacts, 1)
}

func (s *GameControllerSuite) TestAnswerStaleInteractionIgnored() {
	game := s.startedGame()
	game = s.openQuestionFor(game, 4)

	s.Require().NoError(s.controller.AnswerQuestion(s.ctx, game.ID, "stale", 1))
	s.Equal(model.PhaseQuestion, s.load(game.ID).Phase)
}

func (s *GameControllerSuite) TestQuestionTimeout() {
	game := s.startedGame()
	game = s.openQuestionFor(game, 4)

	s.True(s.scheduler.Fire(questionTask(game.ID)))

	game = s.load(game.ID)
	s.Equal(model.PhasePlaying, game.Phase)
	s.Nil(game.Question)
	s.Empty(game.Players[0].Artifacts)
	s.Equal(1, game.CurrentPlayer)
	s.Contains(game.History[len(game.History)-1], "não respondeu a tempo")
}

func (s *GameControllerSuite) TestSeventhArtifactWins() {
	game := s.startedGame()
	theme := s.controller.boardService.SpaceAt(4).Theme
	player := game.Current()
	for _, t := range model.Themes {
		if t != theme {
			player.Artifacts = append(player.Artifacts, t)
		}
	}
	s.save(game)
	game = s.openQuestionFor(game, 4)
	s.Require().NotNil(game.Question)

	s.Require().NoError(s.controller.AnswerQuestion(s.ctx, game.ID, game.Question.InteractionID, 1))

	delay, ok := s.scheduler.Delay(endTask(game.ID))
	s.Require().True(ok)
	s.Equal(DefaultConfig().VictoryDelayAnswer, delay)

	s.scheduler.Fire(endTask(game.ID))
	game = s.load(game.ID)
	s.Equal(model.PhaseEnded, game.Phase)
	s.Equal(model.VictoryArtifacts, game.VictoryType)
}

func (s *GameControllerSuite) TestFullCollectionOutranksAnotherPlayersFinish() {
	game := s.startedGame()
	game.Players[0].Artifacts = append([]model.Theme{}, model.Themes...)
	game.CurrentPlayer = 1
	game.Players[1].Position = 53
	s.save(game)

	s.random.QueueIntn(0, 0, 5) // final dice 6 carries player 2 to the finish
	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))
	s.scheduler.Fire(rollTask(game.ID))
	s.scheduler.Fire(rollTask(game.ID))

	s.scheduler.Fire(endTask(game.ID))
	game = s.load(game.ID)
	s.Equal(model.PhaseEnded, game.Phase)
	s.Equal(model.PlayerID(1), game.Winner, "the full collection wins even on another player's move")
	s.Equal(model.VictoryArtifacts, game.VictoryType)
}

// Special events

// openEventFor puts the current player on a special space and opens its event
func (s *GameControllerSuite) openEventFor(game *model.Game, spaceIndex int) *model.Game {
	player := game.Current()
	player.Position = spaceIndex
	game.PendingSpaceAction = true
	s.save(game)
	s.controller.resolveSpaceAction(game.ID)
	return s.load(game.ID)
}

// withEvent opens an arbitrary event table entry regardless of board position
func (s *GameControllerSuite) withEvent(game *model.Game, eventIndex, position int) *model.Game {
	game.Current().Position = position
	game.SpecialEvent = &model.OpenSpecialEvent{
		InteractionID: "evt-1",
		SpaceIndex:    position,
		Event:         model.SpecialEvents[eventIndex],
	}
	s.save(game)
	return game
}

func (s *GameControllerSuite) TestSpecialSpaceAlwaysOpensFirstEvent() {
	game := s.startedGame()
	game = s.openEventFor(game, 16)

	s.Require().NotNil(game.SpecialEvent)
	s.Equal("Oráculo de Delfos", game.SpecialEvent.Event.Name)
	s.False(game.SpecialEvent.EffectVisible)
	s.True(s.scheduler.Pending(revealTask(game.ID)))
}

func (s *GameControllerSuite) TestEffectRevealDelay() {
	game := s.startedGame()
	game = s.openEventFor(game, 8)

	s.True(s.scheduler.Fire(revealTask(game.ID)))
	s.True(s.load(game.ID).SpecialEvent.EffectVisible)
}

func (s *GameControllerSuite) TestResolveEventGrantsPower() {
	game := s.startedGame()
	game = s.openEventFor(game, 8)

	s.Require().NoError(s.controller.ResolveSpecialEvent(s.ctx, game.ID, game.SpecialEvent.InteractionID))

	game = s.load(game.ID)
	s.Nil(game.SpecialEvent)
	s.True(game.Players[0].HasPower(model.PowerFiftyFifty))
	s.Equal(1, game.CurrentPlayer)
	s.False(s.scheduler.Pending(revealTask(game.ID)))
}

func (s *GameControllerSuite) TestResolveEventPowerNotStacked() {
	game := s.startedGame()
	game.Players[0].Powers = []model.PowerID{model.PowerFiftyFifty}
	s.save(game)
	game = s.openEventFor(game, 8)

	s.Require().NoError(s.controller.ResolveSpecialEvent(s.ctx, game.ID, game.SpecialEvent.InteractionID))
	s.Len(s.load(game.ID).Players[0].Powers, 1)
}

func (s *GameControllerSuite) TestEventMovementClampsAtStart() {
	game := s.startedGame()
	game = s.withEvent(game, 1, 2) // Fúria de Ares, move -3 from space 2

	s.Require().NoError(s.controller.ResolveSpecialEvent(s.ctx, game.ID, "evt-1"))

	game = s.load(game.ID)
	s.Equal(0, game.Players[0].Position)
	s.Contains(game.History[len(game.History)-1], "casa 1", "history shows spaces 1-based")
}

func (s *GameControllerSuite) TestEventExtraTurnKeepsCurrentPlayer() {
	game := s.startedGame()
	game = s.withEvent(game, 2, 8) // Bênção de Atena

	s.Require().NoError(s.controller.ResolveSpecialEvent(s.ctx, game.ID, "evt-1"))

	game = s.load(game.ID)
	s.Equal(0, game.CurrentPlayer)
	s.False(game.ExtraTurnPending)
	s.Equal(0, game.TurnCount)
}

func (s *GameControllerSuite) TestEventTeleportFailsFromSpecialSpace() {
	game := s.startedGame()
	game = s.withEvent(game, 4, 16) // Atalho do Hermes on a themeless space

	s.Require().NoError(s.controller.ResolveSpecialEvent(s.ctx, game.ID, "evt-1"))

	game = s.load(game.ID)
	s.Equal(16, game.Players[0].Position)
	s.Contains(game.History[len(game.History)-1], "caminho estava fechado")
}

func (s *GameControllerSuite) TestEventTeleportJumpsToSameTheme() {
	game := s.startedGame()
	game = s.withEvent(game, 4, 9) // themed space, next Deuses space is 23

	s.Require().NoError(s.controller.ResolveSpecialEvent(s.ctx, game.ID, "evt-1"))
	s.Equal(23, s.load(game.ID).Players[0].Position)
}

func (s *GameControllerSuite) TestShieldNeverAltersEvents() {
	game := s.startedGame()
	game.Players[0].Powers = []model.PowerID{model.PowerShield}
	s.save(game)
	game = s.withEvent(game, 6, 10) // Maldição de Hades: -2 and Cursed

	s.Require().NoError(s.controller.ResolveSpecialEvent(s.ctx, game.ID, "evt-1"))

	game = s.load(game.ID)
	s.Equal(8, game.Players[0].Position, "the shield is a keepsake, the curse still lands")
	s.True(game.Players[0].HasPower(model.PowerCursed))
	s.True(game.Players[0].HasPower(model.PowerShield), "the shield is never spent")
}

func (s *GameControllerSuite) TestResolveEventStaleInteractionIgnored() {
	game := s.startedGame()
	game = s.openEventFor(game, 8)

	s.Require().NoError(s.controller.ResolveSpecialEvent(s.ctx, game.ID, "stale"))
	s.NotNil(s.load(game.ID).SpecialEvent)
}

// Powers

func (s *GameControllerSuite) TestQuestionPowersOfferedBeforeQuestion() {
	game := s.startedGame()
	game.Players[0].Powers = []model.PowerID{model.PowerDivineInsight}
	s.save(game)
	game = s.openQuestionFor(game, 4)

	s.Require().NotNil(game.PowerPrompt)
	s.Equal(model.PowerContextQuestion, game.PowerPrompt.Context)
	s.Nil(game.Question, "the question waits for the prompt")
	s.Equal(model.PhaseQuestion, game.Phase)
	s.False(s.scheduler.Pending(questionTask(game.ID)), "no countdown while the prompt is open")
}

func (s *GameControllerSuite) TestFiftyFiftyHidesTwoWrongOptions() {
	game := s.startedGame()
	game.Players[0].Powers = []model.PowerID{model.PowerFiftyFifty}
	s.save(game)
	game = s.openQuestionFor(game, 4)
	s.Require().NotNil(game.PowerPrompt)

	s.random.QueueIntn(0, 1) // question pick, then the distractor to keep
	s.Require().NoError(s.controller.ActivatePower(s.ctx, game.ID, 1, model.PowerFiftyFifty))

	game = s.load(game.ID)
	s.Nil(game.PowerPrompt)
	s.Require().NotNil(game.Question, "spending the power opens the question")
	s.Require().Len(game.Question.HiddenOptions, 2)
	for _, hidden := range game.Question.HiddenOptions {
		s.NotEqual(game.Question.Question.CorrectIdx, hidden)
	}
	s.Empty(game.Players[0].Powers)
	s.True(s.scheduler.Pending(questionTask(game.ID)))
}

func (s *GameControllerSuite) TestFiftyFiftyTwiceIgnored() {
	game := s.startedGame()
	game.Players[0].Powers = []model.PowerID{model.PowerFiftyFifty}
	s.save(game)
	game = s.openQuestionFor(game, 4)

	_ = s.controller.ActivatePower(s.ctx, game.ID, 1, model.PowerFiftyFifty)
	_ = s.controller.ActivatePower(s.ctx, game.ID, 1, model.PowerFiftyFifty)

	s.Len(s.load(game.ID).Question.HiddenOptions, 2)
}

func (s *GameControllerSuite) TestTimeFreezeDoublesLimit() {
	game := s.startedGame()
	game.Players[0].Powers = []model.PowerID{model.PowerTimeFreeze}
	s.save(game)
	game = s.openQuestionFor(game, 4)

	s.Require().NoError(s.controller.ActivatePower(s.ctx, game.ID, 1, model.PowerTimeFreeze))

	game = s.load(game.ID)
	s.Require().NotNil(game.Question)
	s.Equal(60, game.Question.TimeLimit)
	delay, ok := s.scheduler.Delay(questionTask(game.ID))
	s.Require().True(ok)
	s.Equal(60*time.Second, delay)
}

func (s *GameControllerSuite) TestTimeFreezeCountsFromQuestionOpen() {
	game := s.startedGame()
	game.Players[0].Powers = []model.PowerID{model.PowerFiftyFifty, model.PowerTimeFreeze}
	s.save(game)
	game = s.openQuestionFor(game, 4)
	s.Require().NoError(s.controller.DeclinePowers(s.ctx, game.ID, game.PowerPrompt.InteractionID))

	// Freeze mid-question: the doubled limit is anchored at the open time,
	// not at the activation
	s.clock.Advance(10 * time.Second)
	s.Require().NoError(s.controller.ActivatePower(s.ctx, game.ID, 1, model.PowerTimeFreeze))

	game = s.load(game.ID)
	s.Equal(60, game.Question.TimeLimit)
	delay, ok := s.scheduler.Delay(questionTask(game.ID))
	s.Require().True(ok)
	s.Equal(50*time.Second, delay)
}

func (s *GameControllerSuite) TestDivineInsightRevealsAnswer() {
	game := s.startedGame()
	game.Players[0].Powers = []model.PowerID{model.PowerDivineInsight}
	s.save(game)
	game = s.openQuestionFor(game, 4)

	s.Require().NoError(s.controller.ActivatePower(s.ctx, game.ID, 1, model.PowerDivineInsight))

	game = s.load(game.ID)
	s.Require().NotNil(game.Question)
	s.True(game.Question.RevealCorrect)
}

func (s *GameControllerSuite) TestActivatePowerNotHeldIgnored() {
	game := s.startedGame()
	game = s.openQuestionFor(game, 4)

	s.Require().NoError(s.controller.ActivatePower(s.ctx, game.ID, 1, model.PowerDivineInsight))
	s.False(s.load(game.ID).Question.RevealCorrect)
}

func (s *GameControllerSuite) TestActivatePowerByOtherPlayerIgnored() {
	game := s.startedGame()
	game.Players[1].Powers = []model.PowerID{model.PowerDivineInsight}
	s.save(game)
	game = s.openQuestionFor(game, 4)

	s.Require().NoError(s.controller.ActivatePower(s.ctx, game.ID, 2, model.PowerDivineInsight))
	s.False(s.load(game.ID).Question.RevealCorrect)
}

func (s *GameControllerSuite) TestDeclinePowersOpensQuestion() {
	game := s.startedGame()
	game.Players[0].Powers = []model.PowerID{model.PowerFiftyFifty}
	s.save(game)
	game = s.openQuestionFor(game, 4)
	s.Require().NotNil(game.PowerPrompt)

	s.Require().NoError(s.controller.DeclinePowers(s.ctx, game.ID, game.PowerPrompt.InteractionID))

	game = s.load(game.ID)
	s.Nil(game.PowerPrompt)
	s.Require().NotNil(game.Question, "declining the prompt opens the question unmodified")
	s.Empty(game.Question.HiddenOptions)
	s.Len(game.Players[0].Powers, 1)
	s.True(s.scheduler.Pending(questionTask(game.ID)))
}

func (s *GameControllerSuite) TestDeclinePowersStaleInteractionIgnored() {
	game := s.startedGame()
	game.Players[0].Powers = []model.PowerID{model.PowerFiftyFifty}
	s.save(game)
	game = s.openQuestionFor(game, 4)

	s.Require().NoError(s.controller.DeclinePowers(s.ctx, game.ID, "stale"))

	game = s.load(game.ID)
	s.NotNil(game.PowerPrompt)
	s.Nil(game.Question)
}

// Turn counter

func (s *GameControllerSuite) TestTurnCountTicksAfterLastPlayer() {
	game := s.startedGame()

	// Both players lose their turn via Skip Turn for a fast full round
	game.Players[0].Powers = []model.PowerID{model.PowerSkipTurn}
	game.Players[1].Powers = []model.PowerID{model.PowerSkipTurn}
	s.save(game)

	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))
	s.Equal(0, s.load(game.ID).TurnCount)

	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))
	game = s.load(game.ID)
	s.Equal(1, game.TurnCount)
	s.Equal(0, game.CurrentPlayer)
	s.Equal(1, game.Rounds())
}

func (s *GameControllerSuite) TestTurnCountUntouchedByAnswers() {
	game := s.startedGame()
	game.CurrentPlayer = 1
	s.save(game)
	game = s.openQuestionFor(game, 4)

	s.Require().NoError(s.controller.AnswerQuestion(s.ctx, game.ID, game.Question.InteractionID, 0))

	game = s.load(game.ID)
	s.Equal(0, game.TurnCount, "only rolls move the counter")
	s.Equal(0, game.CurrentPlayer)
}

// Endgame

func (s *GameControllerSuite) TestEndByTimeoutPicksArtifactLeader() {
	game := s.startedGame()
	game.Players[1].Artifacts = []model.Theme{"Deuses", "Mitos"}
	s.save(game)

	s.Require().NoError(s.controller.EndByTimeout(s.ctx, game.ID))

	game = s.load(game.ID)
	s.Equal(model.PhaseEnded, game.Phase)
	s.Equal(model.PlayerID(2), game.Winner)
	s.Equal(model.VictoryTimeout, game.VictoryType)
}

func (s *GameControllerSuite) TestResetGame() {
	game := s.startedGame()
	game.Players[0].Position = 30
	game.Players[0].Artifacts = []model.Theme{"Deuses"}
	s.save(game)
	s.random.QueueIntn(2)
	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))

	s.Require().NoError(s.controller.ResetGame(s.ctx, game.ID))

	game = s.load(game.ID)
	s.Equal(model.PhaseSetup, game.Phase)
	s.Require().Len(game.Players, 2)
	s.Equal(0, game.Players[0].Position)
	s.Empty(game.Players[0].Artifacts)
	s.Empty(game.History)
	s.Equal(0, s.scheduler.PendingCount(), "pending timers are cancelled")
}

func (s *GameControllerSuite) TestDeleteGame() {
	game := s.startedGame()

	s.Require().NoError(s.controller.DeleteGame(s.ctx, game.ID))

	_, err := s.storage.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *GameControllerSuite) TestHistoryBounded() {
	game := s.startedGame()
	for i := 0; i < 25; i++ {
		game.AppendHistory("entrada")
	}
	s.Len(game.History, model.HistoryLimit)
}

// Notifications

func (s *GameControllerSuite) TestNotificationsPushed() {
	game := s.startedGame()
	s.random.QueueIntn(0, 0, 3)
	s.Require().NoError(s.controller.RollDice(s.ctx, game.ID))
	s.scheduler.Fire(rollTask(game.ID))
	s.scheduler.Fire(rollTask(game.ID))
	s.scheduler.Fire(spaceTask(game.ID))

	types := s.notifier.types()
	s.Contains(types, model.NotifyGameUpdate)
	s.Contains(types, model.NotifyDiceTick)
	s.Contains(types, model.NotifyQuestion)
}
