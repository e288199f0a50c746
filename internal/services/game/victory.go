package game

import "github.com/dmesquita/olimpicos/internal/model"

// evaluateVictory scans the roster for a met victory condition. The artifact
// condition is checked for every player before any finish check, so a full
// collection always outranks a player standing on the final space, even when
// they are different players. Ties within a condition go to roster order.
func evaluateVictory(players []model.Player) (model.PlayerID, model.VictoryType, bool) {
	for i := range players {
		if len(players[i].Artifacts) >= len(model.Themes) {
			return players[i].ID, model.VictoryArtifacts, true
		}
	}
	for i := range players {
		if players[i].Position >= model.BoardLength-1 {
			return players[i].ID, model.VictoryFinish, true
		}
	}
	return 0, "", false
}

// timeoutWinner picks the player with the most artifacts. Ties go to the
// earlier roster position.
func timeoutWinner(players []model.Player) model.PlayerID {
	best := 0
	for i := 1; i < len(players); i++ {
		if len(players[i].Artifacts) > len(players[best].Artifacts) {
			best = i
		}
	}
	return players[best].ID
}
