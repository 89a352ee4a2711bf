package game

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"up", ActionUp},
		{"down", ActionDown},
		{"left", ActionLeft},
		{"right", ActionRight},
		{"pause", ActionPause},
		{"resume", ActionPause},
		{"start", ActionStart},
		{"restart", ActionStart},
		{"quit", ActionQuit},
		{"fire", ActionNone},
		{"", ActionNone},
	}
	for _, tt := range tests {
		if got := ParseAction(tt.in); got != tt.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestControllerFlow(t *testing.T) {
	g := NewGame(10, 10, foodAt(Point{X: 7, Y: 7}))
	c := NewController(g, nil)

	if c.Tick() {
		t.Error("Tick before start must not report game over")
	}
	if !c.Apply(ActionStart) {
		t.Fatal("start should change state")
	}
	if c.Apply(ActionStart) {
		t.Error("start while running should be a no-op")
	}
	if !c.Apply(ActionDown) {
		t.Error("turning down should be accepted")
	}
	if c.Apply(ActionUp) {
		t.Error("reversing the queued turn should be rejected")
	}

	c.Tick()
	if head := g.Snake()[0]; head != (Point{X: 2, Y: 1}) {
		t.Errorf("expected head (2,1), got %v", head)
	}

	if !c.Apply(ActionPause) || g.State() != Paused {
		t.Fatalf("expected pause, got %v", g.State())
	}
	c.Tick()
	if head := g.Snake()[0]; head != (Point{X: 2, Y: 1}) {
		t.Errorf("snake moved while paused: %v", head)
	}
	if !c.Apply(ActionPause) || g.State() != Running {
		t.Fatalf("expected resume, got %v", g.State())
	}
}

func TestControllerReportsGameOver(t *testing.T) {
	g := NewGame(10, 10, foodAt(Point{X: 8, Y: 8}))
	c := NewController(g, nil)
	c.Apply(ActionStart)
	g.snake = []Point{{3, 0}, {2, 0}, {1, 0}, {0, 0}}

	ended := false
	for _, a := range []Action{ActionDown, ActionLeft, ActionUp} {
		c.Apply(a)
		ended = c.Tick()
	}
	if !ended {
		t.Fatalf("expected the last tick to end the game, state %v", g.State())
	}
	if c.Tick() {
		t.Error("ticks after game over must not report again")
	}
	if !c.Apply(ActionStart) || g.State() != Running {
		t.Errorf("start after game over should restart, got %v", g.State())
	}
}

func TestControllerRecords(t *testing.T) {
	rec, err := NewRecorder(t.TempDir(), "ctrl")
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	g := NewGame(10, 10, foodAt(Point{X: 7, Y: 7}))
	c := NewController(g, rec)
	c.Apply(ActionStart)
	c.Apply(ActionLeft) // rejected, not recorded
	c.Tick()
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	records, err := ReadRecording(rec.Path())
	if err != nil {
		t.Fatalf("ReadRecording: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Action != "start" || records[1].Action != "tick" {
		t.Errorf("unexpected actions %q, %q", records[0].Action, records[1].Action)
	}
}
