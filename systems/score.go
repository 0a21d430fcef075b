package systems

import (
	"strconv"

	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// deactivate turns a pickup off and drops its footprint. It reports false if
// the pickup was already inactive.
func deactivate(e *donburi.Entry) bool {
	pickup := components.Pickup.Get(e)
	if !pickup.Active {
		return false
	}
	pickup.Active = false
	removeFromSpace(e)
	return true
}

// CollectPickup scores an active pickup for the player. Inactive pickups are
// ignored, so a pickup never counts twice.
func CollectPickup(playerEntry, pickupEntry *donburi.Entry) bool {
	if !deactivate(pickupEntry) {
		return false
	}

	score := components.Score.Get(playerEntry)
	score.Count++
	score.Dirty = true
	if score.Count >= cfg.Player.WinCount {
		score.HasWon = true
	}
	return true
}

// CountText is the scoreboard text for count.
func CountText(count int) string {
	return cfg.HUD.CountPrefix + strconv.Itoa(count)
}

// UpdateScoreboard pushes score changes to the bound sink. The win display
// is revealed once and never hidden.
func UpdateScoreboard(ecs *ecs.ECS) {
	boardEntry, ok := components.ScoreboardSink.First(ecs.World)
	if !ok {
		return
	}
	board := components.ScoreboardSink.Get(boardEntry)
	if board.Sink == nil {
		return
	}

	components.Score.Each(ecs.World, func(e *donburi.Entry) {
		score := components.Score.Get(e)
		if score.Dirty {
			board.Sink.SetCountText(CountText(score.Count))
			score.Dirty = false
		}
		if score.HasWon && !board.WinShown {
			board.Sink.SetWinVisible(true)
			board.WinShown = true
		}
	})
}
