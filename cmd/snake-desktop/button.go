package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug font metrics used by ebitenutil.DebugPrintAt
const (
	glyphWidth  = 6
	glyphHeight = 16
)

type button struct {
	X, Y          int
	Width, Height int
	Text          string
	Visible       bool
	hovered       bool
	pressed       bool
}

func newButton(x, y, width, height int, label string) *button {
	return &button{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Text:    label,
		Visible: true,
	}
}

// update reports a completed click (press and release inside the button)
func (b *button) update() bool {
	if !b.Visible {
		b.pressed = false
		return false
	}

	mx, my := ebiten.CursorPosition()
	b.hovered = mx >= b.X && mx < b.X+b.Width && my >= b.Y && my < b.Y+b.Height

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return wasPressed && !b.pressed && b.hovered
}

func (b *button) draw(screen *ebiten.Image) {
	if !b.Visible {
		return
	}

	var bg color.RGBA
	switch {
	case b.pressed:
		bg = colorButtonPressed
	case b.hovered:
		bg = colorButtonHover
	default:
		bg = colorButton
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bg, false)
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, colorButtonBorder, false)

	textX := b.X + (b.Width-len(b.Text)*glyphWidth)/2
	textY := b.Y + (b.Height-glyphHeight)/2
	ebitenutil.DebugPrintAt(screen, b.Text, textX, textY)
}
