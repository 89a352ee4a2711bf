package game

import (
	"time"

	"github.com/trytobebee/snake_classic/pkg/config"
)

// NewGame creates a game on a width x height board. The game starts in
// NotStarted; call Start to begin. A nil rng falls back to a time-seeded
// source.
func NewGame(width, height int, rng RandSource) *Game {
	if rng == nil {
		rng = NewRandSource(time.Now().UnixNano())
	}
	return &Game{
		Width:     width,
		Height:    height,
		snake:     make([]Point, 0, width*height),
		direction: Right,
		pending:   Right,
		state:     NotStarted,
		rng:       rng,
	}
}

// NewDefaultGame creates a game on the standard board
func NewDefaultGame(rng RandSource) *Game {
	return NewGame(config.Width, config.Height, rng)
}

// Start begins a new round. Only valid from NotStarted or GameOver.
func (g *Game) Start() {
	if g.state != NotStarted && g.state != GameOver {
		return
	}
	g.Reset()
}

// Reset reinitializes the snake, score and food and sets the game running,
// whatever the current state.
func (g *Game) Reset() {
	g.snake = g.snake[:0]
	for i := config.InitialSnakeLength - 1; i >= 0; i-- {
		g.snake = append(g.snake, Point{X: i % g.Width, Y: 0})
	}
	g.direction = Right
	g.pending = Right
	g.score = 0
	g.foodEaten = 0
	g.ticks = 0
	g.crashPoint = Point{}
	g.state = Running
	g.PlaceFood()
}

// Pause suspends a running game
func (g *Game) Pause() {
	if g.state == Running {
		g.state = Paused
	}
}

// Resume continues a paused game
func (g *Game) Resume() {
	if g.state == Paused {
		g.state = Running
	}
}

// TogglePause switches between Running and Paused
func (g *Game) TogglePause() {
	switch g.state {
	case Running:
		g.Pause()
	case Paused:
		g.Resume()
	}
}

// PauseLabel is the text for a pause/resume toggle control
func (g *Game) PauseLabel() string {
	if g.state == Paused {
		return "Resume"
	}
	return "Pause"
}

// SetDirection queues a direction change for the next Advance.
// Reversals onto the neck and input outside Running are ignored.
func (g *Game) SetDirection(newDir Direction) bool {
	if g.state != Running || !newDir.IsValid() {
		return false
	}
	// Compare against both the last performed move and the queued one so
	// that two quick presses within a tick cannot fold the head back.
	if newDir == g.direction.Opposite() || newDir == g.pending.Opposite() {
		return false
	}
	if g.pending == newDir {
		return false
	}
	g.pending = newDir
	return true
}

// Advance moves the snake one cell. It returns true if the snake moved and
// the game is still running.
func (g *Game) Advance() bool {
	if g.state != Running {
		return false
	}

	g.direction = g.pending
	head := g.snake[0]
	newHead := Point{
		X: (head.X + g.direction.DX + g.Width) % g.Width,
		Y: (head.Y + g.direction.DY + g.Height) % g.Height,
	}

	// Self collision is checked against the body before it moves, and
	// before any food is eaten.
	if g.onSnake(newHead) {
		g.state = GameOver
		g.crashPoint = newHead
		return false
	}

	g.snake = append(g.snake, Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead
	g.ticks++

	if newHead == g.food {
		g.score++
		g.foodEaten++
		g.PlaceFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
	return true
}

// State returns the current lifecycle state
func (g *Game) State() RunState {
	return g.state
}

// Score returns the current score
func (g *Game) Score() int {
	return g.score
}

// Snake returns a copy of the snake cells, head first
func (g *Game) Snake() []Point {
	out := make([]Point, len(g.snake))
	copy(out, g.snake)
	return out
}

// Food returns the food cell
func (g *Game) Food() Point {
	return g.food
}

// Direction returns the direction of the last move
func (g *Game) Direction() Direction {
	return g.direction
}

// PendingDirection returns the direction the next Advance will take
func (g *Game) PendingDirection() Direction {
	return g.pending
}

// Snapshot returns a copy of the current game state for rendering
func (g *Game) Snapshot() State {
	s := State{
		Width:     g.Width,
		Height:    g.Height,
		Snake:     g.Snake(),
		Food:      g.food,
		Score:     g.score,
		FoodEaten: g.foodEaten,
		Ticks:     g.ticks,
		RunState:  g.state,
		Direction: g.direction,
	}
	if g.state == GameOver {
		crash := g.crashPoint
		s.CrashPoint = &crash
	}
	return s
}

// GetGameConfig returns the board settings for clients
func (g *Game) GetGameConfig() GameConfig {
	return GameConfig{
		Width:          g.Width,
		Height:         g.Height,
		CellSize:       config.CellSize,
		TickIntervalMs: int(config.TickInterval.Milliseconds()),
	}
}
