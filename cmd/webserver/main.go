package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Global map to track active IP connections
var activeIPs sync.Map

type ServerMessage struct {
	Type   string           `json:"type"`
	Config *game.GameConfig `json:"config,omitempty"`
	State  *game.State      `json:"state,omitempty"`
}

type ClientMessage struct {
	Action string `json:"action"`
}

// GameServer runs one game for one connection. Only run touches the game;
// the reader goroutine hands actions over through the actions channel.
type GameServer struct {
	conn    *websocket.Conn
	ctrl    *game.Controller
	tick    time.Duration
	actions chan game.Action
	done    chan struct{}
}

func NewGameServer(conn *websocket.Conn, tick time.Duration, seed int64, rec *game.GameRecorder) *GameServer {
	g := game.NewDefaultGame(game.NewRandSource(seed))
	return &GameServer{
		conn:    conn,
		ctrl:    game.NewController(g, rec),
		tick:    tick,
		actions: make(chan game.Action, 16),
		done:    make(chan struct{}),
	}
}

func (gs *GameServer) send(msg ServerMessage) error {
	gs.conn.SetWriteDeadline(time.Now().Add(gs.tick * 5))
	return gs.conn.WriteJSON(msg)
}

func (gs *GameServer) sendState() error {
	state := gs.ctrl.Game.Snapshot()
	return gs.send(ServerMessage{Type: "state", State: &state})
}

// readLoop decodes client messages until the connection fails
func (gs *GameServer) readLoop() {
	defer close(gs.done)
	for {
		var msg ClientMessage
		if err := gs.conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("Read error:", err)
			}
			return
		}
		action := game.ParseAction(msg.Action)
		if action == game.ActionNone {
			continue
		}
		select {
		case gs.actions <- action:
		default:
			// Client is flooding; the game loop will catch up next tick
		}
	}
}

// run is the only goroutine that mutates the game
func (gs *GameServer) run() error {
	cfg := gs.ctrl.Game.GetGameConfig()
	cfg.TickIntervalMs = int(gs.tick.Milliseconds())
	if err := gs.send(ServerMessage{Type: "config", Config: &cfg}); err != nil {
		return fmt.Errorf("send config: %w", err)
	}
	if err := gs.sendState(); err != nil {
		return fmt.Errorf("send state: %w", err)
	}

	go gs.readLoop()

	ticker := time.NewTicker(gs.tick)
	defer ticker.Stop()

	for {
		select {
		case <-gs.done:
			return nil

		case action := <-gs.actions:
			if action == game.ActionQuit {
				gs.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
				return nil
			}
			// Immediate state update for UI responsiveness
			if gs.ctrl.Apply(action) {
				if err := gs.sendState(); err != nil {
					return fmt.Errorf("write state: %w", err)
				}
			}

		case <-ticker.C:
			if gs.ctrl.Game.State() != game.Running {
				continue
			}
			gs.ctrl.Tick()
			if err := gs.sendState(); err != nil {
				return fmt.Errorf("write state: %w", err)
			}
		}
	}
}

type server struct {
	tick      time.Duration
	recordDir string
	seed      int64
	sessions  int64
	mu        sync.Mutex
}

func (s *server) nextSession() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions++
	return s.sessions
}

func (s *server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	log.Println("New WebSocket connection from:", r.RemoteAddr)

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	// One game per client address
	if _, loaded := activeIPs.LoadOrStore(ip, true); loaded {
		log.Printf("Connection rejected: IP %s is already connected\n", ip)
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Already connected"))
		return
	}
	defer activeIPs.Delete(ip)

	session := s.nextSession()
	var rec *game.GameRecorder
	if s.recordDir != "" {
		rec, err = game.NewRecorder(s.recordDir, fmt.Sprintf("web%d", session))
		if err != nil {
			log.Printf("Recorder disabled for session %d: %v", session, err)
			rec = nil
		} else {
			defer rec.Close()
		}
	}

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += session
	}

	gs := NewGameServer(conn, s.tick, seed, rec)
	if err := gs.run(); err != nil {
		log.Printf("Session %d ended: %v", session, err)
		return
	}
	log.Printf("Session %d closed, final score %d", session, gs.ctrl.Game.Score())
}

func main() {
	addr := flag.String("addr", config.WebAddr, "listen address")
	static := flag.String("static", config.WebStaticDir, "directory served at /")
	tick := flag.Duration("tick", config.TickInterval, "time between snake steps")
	seed := flag.Int64("seed", 0, "food placement seed (0 = current time)")
	recordDir := flag.String("record", "", "write step recordings into this directory")
	flag.Parse()

	s := &server{tick: *tick, recordDir: *recordDir, seed: *seed}

	// Serve static files
	http.Handle("/", http.FileServer(http.Dir(*static)))

	// WebSocket endpoint
	http.HandleFunc("/ws", s.handleWebSocket)

	fmt.Printf("🚀 Snake web server starting on http://localhost%s\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
