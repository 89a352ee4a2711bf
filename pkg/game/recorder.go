package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/trytobebee/snake_classic/pkg/config"
)

// StepRecord is one line of a recording: the action a host applied and the
// state that followed it
type StepRecord struct {
	Step   int       `json:"step"`
	Time   time.Time `json:"time"`
	Action string    `json:"action"`
	State  State     `json:"state"`
}

// GameRecorder handles asynchronous logging of game steps
type GameRecorder struct {
	path       string
	file       *os.File
	writer     *bufio.Writer
	recordChan chan StepRecord
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	step       int
	dropped    int
}

// NewRecorder creates a recorder writing into dir.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(dir, sessionID string) (*GameRecorder, error) {
	if dir == "" {
		dir = config.RecordDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}

	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("game_%s_%d.jsonl", sessionID, timestamp)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &GameRecorder{
		path:       path,
		file:       f,
		writer:     bufio.NewWriter(f),
		recordChan: make(chan StepRecord, config.RecordBufferSize),
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// Path returns the file being written
func (r *GameRecorder) Path() string {
	return r.path
}

// Record snapshots g and queues it under the given action label.
// Non-blocking: the step is dropped if the buffer is full.
func (r *GameRecorder) Record(action string, g *Game) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.step++
	rec := StepRecord{
		Step:   r.step,
		Time:   time.Now(),
		Action: action,
		State:  g.Snapshot(),
	}
	select {
	case r.recordChan <- rec:
	default:
		// Never stall the game loop on disk
		r.dropped++
	}
	r.mu.Unlock()
}

// Close flushes the buffer and closes the file
func (r *GameRecorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	dropped := r.dropped
	close(r.recordChan)
	r.mu.Unlock()

	r.wg.Wait()
	if dropped > 0 {
		log.Printf("recorder: dropped %d steps writing %s", dropped, r.path)
	}
	return r.file.Close()
}

func (r *GameRecorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.recordChan {
		if err := encoder.Encode(rec); err != nil {
			log.Printf("recorder: error recording step %d: %v", rec.Step, err)
			continue
		}
	}
	if err := r.writer.Flush(); err != nil {
		log.Printf("recorder: flush %s: %v", r.path, err)
	}
}

// ReadRecording loads every step of a recording file
func ReadRecording(path string) ([]StepRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()

	var records []StepRecord
	scanner := bufio.NewScanner(f)
	// Long snakes make long lines
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec StepRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	return records, nil
}
