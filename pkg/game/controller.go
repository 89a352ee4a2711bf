package game

import "log"

// Action is a host input already decoded from a key, button or message
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionStart
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionPause:
		return "pause"
	case ActionStart:
		return "start"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// ParseAction maps an action name (as sent by web clients) to an Action
func ParseAction(s string) Action {
	switch s {
	case "up":
		return ActionUp
	case "down":
		return ActionDown
	case "left":
		return ActionLeft
	case "right":
		return ActionRight
	case "pause", "resume":
		return ActionPause
	case "start", "restart":
		return ActionStart
	case "quit":
		return ActionQuit
	}
	return ActionNone
}

// Direction returns the movement direction for a move action
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionDown:
		return Down, true
	case ActionLeft:
		return Left, true
	case ActionRight:
		return Right, true
	}
	return Direction{}, false
}

// Controller is the glue every host shares: it applies decoded input and
// timer ticks to one game and mirrors them to an optional recorder.
// Like Game it must be driven from a single goroutine.
type Controller struct {
	Game     *Game
	Recorder *GameRecorder
}

// NewController wraps g. rec may be nil.
func NewController(g *Game, rec *GameRecorder) *Controller {
	return &Controller{Game: g, Recorder: rec}
}

// Apply handles one input action. It reports whether the state visible to
// a renderer changed.
func (c *Controller) Apply(a Action) bool {
	g := c.Game
	var changed bool

	if dir, ok := a.Direction(); ok {
		changed = g.SetDirection(dir)
	} else {
		before := g.State()
		switch a {
		case ActionPause:
			g.TogglePause()
		case ActionStart:
			g.Start()
		}
		changed = g.State() != before
	}

	if changed {
		c.record(a.String())
	}
	return changed
}

// Tick advances the game by one step. It returns true when this tick ended
// the game.
func (c *Controller) Tick() bool {
	g := c.Game
	if g.State() != Running {
		return false
	}
	moved := g.Advance()
	c.record("tick")
	if !moved && g.State() == GameOver {
		log.Printf("game over: score %d after %d steps", g.Score(), g.ticks)
		return true
	}
	return false
}

func (c *Controller) record(action string) {
	if c.Recorder != nil {
		c.Recorder.Record(action, c.Game)
	}
}
