package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/tower-defense/assets"
	"github.com/automoto/tower-defense/headless"
)

func main() {
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (updates per second)")
	duration := flag.Duration("duration", 0, "Stop after this much wall time (0 = until interrupted)")
	quiet := flag.Bool("quiet", false, "Do not log individual shots")
	flag.Parse()

	loop, err := headless.NewGameLoop(assets.NewModelLoader(nil), *tickRate)
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}
	if !*quiet {
		loop.LogEvents()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	loop.Run(ctx)

	stats := loop.Stats()
	log.Printf("Simulated %v in %d ticks: %d shots fired, %d bullets despawned, %d alive",
		loop.Elapsed(), loop.Ticks(), stats.ShotsFired, stats.BulletsDespawned, stats.BulletsAlive())
}
