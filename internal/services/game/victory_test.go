package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmesquita/olimpicos/internal/model"
)

func TestEvaluateVictoryArtifactsBeforeFinish(t *testing.T) {
	players := []model.Player{
		{ID: 1, Position: model.BoardLength - 1, Artifacts: append([]model.Theme{}, model.Themes...)},
	}

	winner, vt, won := evaluateVictory(players)
	assert.True(t, won)
	assert.Equal(t, model.PlayerID(1), winner)
	assert.Equal(t, model.VictoryArtifacts, vt)
}

func TestEvaluateVictoryScansWholeRoster(t *testing.T) {
	// Player 2 stands on the finish, but player 1 already holds everything
	players := []model.Player{
		{ID: 1, Position: 20, Artifacts: append([]model.Theme{}, model.Themes...)},
		{ID: 2, Position: model.BoardLength - 1},
	}

	winner, vt, won := evaluateVictory(players)
	assert.True(t, won)
	assert.Equal(t, model.PlayerID(1), winner)
	assert.Equal(t, model.VictoryArtifacts, vt)
}

func TestEvaluateVictoryFinish(t *testing.T) {
	players := []model.Player{
		{ID: 1, Position: 10},
		{ID: 2, Position: model.BoardLength - 1},
	}

	winner, vt, won := evaluateVictory(players)
	assert.True(t, won)
	assert.Equal(t, model.PlayerID(2), winner)
	assert.Equal(t, model.VictoryFinish, vt)
}

func TestEvaluateVictoryNone(t *testing.T) {
	players := []model.Player{
		{ID: 1, Position: 30, Artifacts: []model.Theme{"Deuses"}},
		{ID: 2, Position: 12},
	}

	_, _, won := evaluateVictory(players)
	assert.False(t, won)
}

func TestTimeoutWinnerTieGoesToEarlierPlayer(t *testing.T) {
	players := []model.Player{
		{ID: 1, Artifacts: []model.Theme{"Deuses"}},
		{ID: 2, Artifacts: []model.Theme{"Mitos"}},
	}
	assert.Equal(t, model.PlayerID(1), timeoutWinner(players))
}

func TestTimeoutWinnerMostArtifacts(t *testing.T) {
	players := []model.Player{
		{ID: 1},
		{ID: 2, Artifacts: []model.Theme{"Mitos", "Titãs"}},
		{ID: 3, Artifacts: []model.Theme{"Deuses"}},
	}
	assert.Equal(t, model.PlayerID(2), timeoutWinner(players))
}
