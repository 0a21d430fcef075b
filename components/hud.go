package components

import "github.com/yohamta/donburi"

// Scoreboard receives score display updates.
type Scoreboard interface {
	SetCountText(text string)
	SetWinVisible(visible bool)
}

// ScoreboardData binds a Scoreboard sink into the world.
type ScoreboardData struct {
	Sink Scoreboard
	// WinShown is set once the sink has been told to reveal the win display.
	WinShown bool
}

var ScoreboardSink = donburi.NewComponentType[ScoreboardData]()
