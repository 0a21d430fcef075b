package factory

import (
	"github.com/automoto/rollaball/archetypes"
	"github.com/automoto/rollaball/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock creates the simulation clock stepping delta seconds per tick.
func CreateClock(ecs *ecs.ECS, delta float64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Delta: delta})
	return clock
}

// CreateScoreboard binds sink as the score display and hides its win banner.
func CreateScoreboard(ecs *ecs.ECS, sink components.Scoreboard) *donburi.Entry {
	sink.SetWinVisible(false)
	board := archetypes.Scoreboard.Spawn(ecs)
	components.ScoreboardSink.SetValue(board, components.ScoreboardData{Sink: sink})
	return board
}
