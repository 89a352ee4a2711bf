package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
	"github.com/trytobebee/snake_classic/pkg/input"
	"github.com/trytobebee/snake_classic/pkg/renderer"
)

func main() {
	tick := flag.Duration("tick", config.TickInterval, "time between snake steps")
	seed := flag.Int64("seed", 0, "food placement seed (0 = current time)")
	recordDir := flag.String("record", "", "write a step recording into this directory")
	logFile := flag.String("log", "", "write diagnostics to this file")
	flag.Parse()

	// The screen belongs to the renderer while the game runs
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error opening log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(*tick, *seed, *recordDir); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(tick time.Duration, seed int64, recordDir string) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := game.NewDefaultGame(game.NewRandSource(seed))

	var rec *game.GameRecorder
	if recordDir != "" {
		var err error
		rec, err = game.NewRecorder(recordDir, "terminal")
		if err != nil {
			return err
		}
		defer rec.Close()
		log.Printf("recording to %s", rec.Path())
	}
	ctrl := game.NewController(g, rec)

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		return err
	}
	defer inputHandler.Stop()

	render := renderer.NewTerminalRenderer(g.Width, g.Height)
	out := os.Stdout
	renderer.HideCursor(out)
	defer renderer.ShowCursor(out)

	draw := func() {
		if err := render.Render(out, g.Snapshot()); err != nil {
			log.Printf("render: %v", err)
		}
	}

	inputChan := inputHandler.GetInputChan()

	// Game loop ticker
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	draw()

	for {
		select {
		case key := <-inputChan:
			action := input.ParseAction(key)
			if action == game.ActionQuit {
				renderer.ClearScreen(out)
				fmt.Fprintf(out, "\r\n  Thanks for playing! Final score: %d\r\n", g.Score())
				return nil
			}
			if ctrl.Apply(action) {
				draw()
			}

		case <-ticker.C:
			if g.State() != game.Running {
				continue
			}
			ctrl.Tick()
			draw()
		}
	}
}
