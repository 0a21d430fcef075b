package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. Now is derived from Tick so it does not
// drift with repeated additions.
type ClockData struct {
	Tick  uint64
	Delta float64
	Now   float64
}

var Clock = donburi.NewComponentType[ClockData]()

// Advance moves the clock forward one fixed step.
func (c *ClockData) Advance() {
	c.Tick++
	c.Now = float64(c.Tick) * c.Delta
}
