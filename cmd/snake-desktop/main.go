package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
)

func main() {
	tick := flag.Duration("tick", config.TickInterval, "time between snake steps")
	seed := flag.Int64("seed", 0, "food placement seed (0 = current time)")
	recordDir := flag.String("record", "", "write a step recording into this directory")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var rec *game.GameRecorder
	if *recordDir != "" {
		var err error
		rec, err = game.NewRecorder(*recordDir, "desktop")
		if err != nil {
			log.Fatal(err)
		}
		defer rec.Close()
		log.Printf("recording to %s", rec.Path())
	}

	g := game.NewDefaultGame(game.NewRandSource(*seed))
	app := newApp(game.NewController(g, rec), *tick)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Snake Game")

	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		log.Printf("desktop: %v", err)
	}
}
