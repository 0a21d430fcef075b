package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/rollaball/assets"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/headless/core"
)

func main() {
	scriptPath := flag.String("script", "", "YAML input script (required)")
	level := flag.String("level", "", "TMX level on disk (default: embedded arena)")
	tuningPath := flag.String("tuning", "", "YAML file overriding player tuning")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	fast := flag.Bool("fast", false, "Run as fast as possible instead of in real time")
	flag.Parse()

	if *scriptPath == "" {
		log.Fatal("-script is required")
	}

	script, err := core.LoadScript(*scriptPath, cfg.C.TPS)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}
	cfg.C.TPS = script.TPS

	arena, err := loadArena(*level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	var updates <-chan *cfg.Tuning
	if *tuningPath != "" {
		t, err := cfg.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply(&cfg.Player)

		if *watch {
			w, err := cfg.WatchTuning(*tuningPath)
			if err != nil {
				log.Fatalf("Failed to watch tuning: %v", err)
			}
			defer w.Close()
			updates = w.Updates
		}
	}

	runner, err := core.NewRunner(arena, script, updates)
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}
	loop := core.NewGameLoop(runner, script.TPS)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("[headless] running %s for %.1fs at %d ticks/second", *scriptPath, script.Duration, script.TPS)
	if *fast {
		loop.RunFast()
	} else {
		loop.Run()
	}
}

func loadArena(path string) (*assets.Arena, error) {
	if path == "" {
		return assets.LoadDefaultArena()
	}
	return assets.LoadArenaFile(path)
}
