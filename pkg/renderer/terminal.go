package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	width  int
	height int
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellEdge
	cellHead
	cellBody
	cellFood
	cellCrash
)

// NewTerminalRenderer creates a renderer for a width x height board. The
// frame drawn around the board takes one extra cell on each side.
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, height+2)
	for i := range board {
		board[i] = make([]int, width+2)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		board:  board,
	}
}

// ClearScreen clears the terminal using ANSI escape codes
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// Render draws a snapshot. It only reads s.
func (r *TerminalRenderer) Render(w io.Writer, s game.State) error {
	r.buffer.Reset()
	r.buffer.WriteString("\033[H\033[2J")
	r.fill(s)

	r.buffer.WriteString("\r\n  🐍 SNAKE 🐍\r\n")
	pauseLabel := "Pause"
	if s.RunState == game.Paused {
		pauseLabel = "Resume"
	}
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Length: %d  |  [P] %s\r\n\r\n",
		s.Score, len(s.Snake), pauseLabel))

	// Rows are drawn with \r\n because the keyboard holds the tty in raw mode
	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			r.buffer.WriteString(glyph(cell))
		}
		r.buffer.WriteString("\r\n")
	}

	r.buffer.WriteString("\r\n  Arrow keys or WASD to move, P or Space to pause, Q to quit\r\n")

	switch s.RunState {
	case game.NotStarted:
		r.buffer.WriteString("\r\n  Press Enter to start\r\n")
	case game.Paused:
		r.buffer.WriteString("\r\n  ⏸️  PAUSED - Press P to continue\r\n")
	case game.GameOver:
		r.buffer.WriteString(fmt.Sprintf("\r\n  💀 GAME OVER! Score: %d. Press Enter to play again or Q to quit\r\n", s.Score))
	}

	_, err := io.WriteString(w, r.buffer.String())
	return err
}

// fill paints the snapshot into the preallocated board
func (r *TerminalRenderer) fill(s game.State) {
	last := len(r.board) - 1
	for y := range r.board {
		for x := range r.board[y] {
			if y == 0 || y == last || x == 0 || x == len(r.board[y])-1 {
				r.board[y][x] = cellEdge
			} else {
				r.board[y][x] = cellEmpty
			}
		}
	}

	if s.RunState == game.NotStarted {
		return
	}

	r.set(s.Food, cellFood)
	// Tail first so the head wins if segments overlap
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.set(s.Snake[i], cellHead)
		} else {
			r.set(s.Snake[i], cellBody)
		}
	}
	if s.CrashPoint != nil {
		r.set(*s.CrashPoint, cellCrash)
	}
}

func (r *TerminalRenderer) set(p game.Point, cell int) {
	if p.X < 0 || p.X >= r.width || p.Y < 0 || p.Y >= r.height {
		return
	}
	r.board[p.Y+1][p.X+1] = cell
}

func glyph(cell int) string {
	switch cell {
	case cellEdge:
		return config.CharEdge
	case cellHead:
		return config.CharHead
	case cellBody:
		return config.CharBody
	case cellFood:
		return config.CharFood
	case cellCrash:
		return config.CharCrash
	}
	return config.CharEmpty
}
