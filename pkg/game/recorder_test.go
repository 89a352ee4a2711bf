package game

import (
	"testing"
)

func TestRecorderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewRecorder(dir, "test")
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	g := NewGame(10, 10, foodAt(Point{X: 7, Y: 7}))
	g.Start()
	rec.Record("start", g)
	g.Advance()
	rec.Record("tick", g)

	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Recording after close is ignored
	rec.Record("tick", g)

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
	if records[1].Step != 2 {
		t.Errorf("expected step 2, got %d", records[1].Step)
	}
	last := records[1].State
	if last.RunState != Running {
		t.Errorf("expected running state, got %v", last.RunState)
	}
	if len(last.Snake) != 3 || last.Snake[0] != (Point{X: 3, Y: 0}) {
		t.Errorf("unexpected snake in record: %v", last.Snake)
	}
	if last.Food != (Point{X: 7, Y: 7}) {
		t.Errorf("unexpected food in record: %v", last.Food)
	}
}

func TestRecorderCloseTwice(t *testing.T) {
	rec, err := NewRecorder(t.TempDir(), "twice")
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}

func TestReadRecordingMissingFile(t *testing.T) {
	if _, err := ReadRecording(t.TempDir() + "/missing.jsonl"); err == nil {
		t.Error("expected error for missing recording")
	}
}
