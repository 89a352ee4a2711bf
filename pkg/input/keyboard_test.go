package input

import (
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/trytobebee/snake_classic/pkg/game"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name  string
		input KeyInput
		want  game.Direction
		ok    bool
	}{
		{"arrow up", KeyInput{Key: keyboard.KeyArrowUp}, game.Up, true},
		{"arrow down", KeyInput{Key: keyboard.KeyArrowDown}, game.Down, true},
		{"arrow left", KeyInput{Key: keyboard.KeyArrowLeft}, game.Left, true},
		{"arrow right", KeyInput{Key: keyboard.KeyArrowRight}, game.Right, true},
		{"w", KeyInput{Char: 'w'}, game.Up, true},
		{"S", KeyInput{Char: 'S'}, game.Down, true},
		{"a", KeyInput{Char: 'a'}, game.Left, true},
		{"D", KeyInput{Char: 'D'}, game.Right, true},
		{"x", KeyInput{Char: 'x'}, game.Direction{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDirection(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseDirection(%+v) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input KeyInput
		want  game.Action
	}{
		{KeyInput{Char: 'q'}, game.ActionQuit},
		{KeyInput{Key: keyboard.KeyEsc}, game.ActionQuit},
		{KeyInput{Key: keyboard.KeyCtrlC}, game.ActionQuit},
		{KeyInput{Key: keyboard.KeyEnter}, game.ActionStart},
		{KeyInput{Char: 'R'}, game.ActionStart},
		{KeyInput{Key: keyboard.KeySpace}, game.ActionPause},
		{KeyInput{Char: 'p'}, game.ActionPause},
		{KeyInput{Key: keyboard.KeyArrowLeft}, game.ActionLeft},
		{KeyInput{Char: 's'}, game.ActionDown},
		{KeyInput{Char: 'z'}, game.ActionNone},
	}

	for _, tt := range tests {
		if got := ParseAction(tt.input); got != tt.want {
			t.Errorf("ParseAction(%+v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
