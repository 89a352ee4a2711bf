package game

import "fmt"

// Point represents a cell on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is a unit step on the board
type Direction struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// The four legal directions
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsValid reports whether d is one of Up, Down, Left or Right
func (d Direction) IsValid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// RunState is the lifecycle state of a game
type RunState int

const (
	NotStarted RunState = iota
	Running
	Paused
	GameOver
)

func (s RunState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// MarshalText lets RunState appear by name in JSON snapshots
func (s RunState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a name written by MarshalText
func (s *RunState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "not_started":
		*s = NotStarted
	case "running":
		*s = Running
	case "paused":
		*s = Paused
	case "game_over":
		*s = GameOver
	default:
		return fmt.Errorf("unknown run state %q", text)
	}
	return nil
}

// Game holds all mutable state of a single game. It is not safe for
// concurrent use; hosts drive it from one goroutine.
type Game struct {
	Width  int
	Height int

	snake      []Point
	food       Point
	direction  Direction // Direction of the last performed move
	pending    Direction // Applied on the next Advance
	score      int
	foodEaten  int
	ticks      int
	state      RunState
	crashPoint Point

	rng RandSource
}

// State is a read-only snapshot of a game for rendering and serialization
type State struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Snake      []Point   `json:"snake"`
	Food       Point     `json:"food"`
	Score      int       `json:"score"`
	FoodEaten  int       `json:"foodEaten"`
	Ticks      int       `json:"ticks"`
	RunState   RunState  `json:"runState"`
	Direction  Direction `json:"direction"`
	CrashPoint *Point    `json:"crashPoint,omitempty"`
}

// GameConfig is a DTO for game settings sent to clients on connect
type GameConfig struct {
	Width          int `json:"width"`
	Height         int `json:"height"`
	CellSize       int `json:"cellSize"`
	TickIntervalMs int `json:"tickIntervalMs"`
}
