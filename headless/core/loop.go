package core

import (
	"log"
	"time"
)

// GameLoop drives a Runner at a fixed tick rate.
type GameLoop struct {
	runner   *Runner
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(runner *Runner, tickRate int) *GameLoop {
	return &GameLoop{
		runner:   runner,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run ticks in real time until the script ends or Stop is called.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[headless] loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("[headless] loop stopped")
			return
		case <-ticker.C:
			if !g.runner.Tick() {
				g.logSummary()
				return
			}
		}
	}
}

// RunFast ticks as fast as possible, ignoring wall time.
func (g *GameLoop) RunFast() {
	for g.runner.Tick() {
		select {
		case <-g.stopChan:
			return
		default:
		}
	}
	g.logSummary()
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) logSummary() {
	sb := g.runner.Scoreboard
	log.Printf("[headless] finished at t=%.2fs: %s, won=%t", g.runner.Sim.Now(), sb.Count, sb.WinVisible)
}
