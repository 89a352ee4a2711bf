package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
)

var (
	colorBackground    = color.RGBA{30, 30, 30, 255}
	colorSnake         = color.RGBA{70, 200, 120, 255}
	colorSnakeHead     = color.RGBA{100, 255, 150, 255}
	colorFood          = color.RGBA{255, 80, 80, 255}
	colorOverlay       = color.RGBA{0, 0, 0, 160}
	colorButton        = color.RGBA{70, 70, 80, 255}
	colorButtonHover   = color.RGBA{90, 90, 100, 255}
	colorButtonPressed = color.RGBA{60, 60, 70, 255}
	colorButtonBorder  = color.RGBA{100, 100, 110, 255}
)

const (
	buttonWidth  = 90
	buttonHeight = 28
)

// app is the window host. Ebiten calls Update on a fixed schedule; every
// stepEvery updates the snake advances one cell.
type app struct {
	ctrl      *game.Controller
	stepEvery int
	updates   int

	startButton *button
	pauseButton *button
}

func newApp(ctrl *game.Controller, tick time.Duration) *app {
	perUpdate := time.Second / time.Duration(ebiten.TPS())
	stepEvery := int(tick / perUpdate)
	if stepEvery < 1 {
		stepEvery = 1
	}

	a := &app{
		ctrl:      ctrl,
		stepEvery: stepEvery,
		startButton: newButton(
			(config.WindowWidth-buttonWidth)/2, (config.WindowHeight-buttonHeight)/2,
			buttonWidth, buttonHeight, "Start"),
		pauseButton: newButton(
			config.WindowWidth-buttonWidth-8, 8,
			buttonWidth, buttonHeight, "Pause"),
	}
	a.syncButtons()
	return a
}

func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if action := pressedAction(); action != game.ActionNone {
		a.ctrl.Apply(action)
	}
	if a.startButton.update() {
		a.ctrl.Apply(game.ActionStart)
	}
	if a.pauseButton.update() {
		a.ctrl.Apply(game.ActionPause)
	}

	if a.ctrl.Game.State() == game.Running {
		a.updates++
		if a.updates >= a.stepEvery {
			a.updates = 0
			a.ctrl.Tick()
		}
	}

	a.syncButtons()
	return nil
}

// syncButtons mirrors run state into button visibility and labels
func (a *app) syncButtons() {
	g := a.ctrl.Game
	state := g.State()
	a.startButton.Visible = state == game.NotStarted || state == game.GameOver
	if state == game.GameOver {
		a.startButton.Text = "Play again"
	} else {
		a.startButton.Text = "Start"
	}
	a.pauseButton.Visible = state == game.Running || state == game.Paused
	a.pauseButton.Text = g.PauseLabel()
}

func pressedAction() game.Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		return game.ActionUp
	case inpututil.IsKeyJustPressed(ebiten.KeyDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		return game.ActionDown
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		return game.ActionLeft
	case inpututil.IsKeyJustPressed(ebiten.KeyRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		return game.ActionRight
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyP):
		return game.ActionPause
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return game.ActionStart
	}
	return game.ActionNone
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s := a.ctrl.Game.Snapshot()

	if s.RunState != game.NotStarted {
		cell := float32(config.CellSize)
		for i := len(s.Snake) - 1; i >= 0; i-- {
			p := s.Snake[i]
			c := colorSnake
			if i == 0 {
				c = colorSnakeHead
			}
			vector.DrawFilledRect(screen, float32(p.X)*cell, float32(p.Y)*cell, cell, cell, c, false)
		}
		vector.DrawFilledCircle(screen,
			float32(s.Food.X)*cell+cell/2, float32(s.Food.Y)*cell+cell/2, cell/2,
			colorFood, true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.Score), 10, 10)

	if s.RunState == game.GameOver {
		vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.WindowHeight, colorOverlay, false)
		msg := fmt.Sprintf("Game Over! Score: %d", s.Score)
		ebitenutil.DebugPrintAt(screen, msg,
			(config.WindowWidth-len(msg)*glyphWidth)/2, a.startButton.Y-2*glyphHeight)
	}

	a.startButton.draw(screen)
	a.pauseButton.draw(screen)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
