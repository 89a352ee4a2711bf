package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
)

func readMessage(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return msg
}

func TestWebSocketSession(t *testing.T) {
	s := &server{tick: 10 * time.Millisecond, seed: 7}
	ts := httptest.NewServer(http.HandlerFunc(s.handleWebSocket))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	msg := readMessage(t, conn)
	if msg.Type != "config" || msg.Config == nil {
		t.Fatalf("expected config first, got %+v", msg)
	}
	if msg.Config.Width != config.Width || msg.Config.Height != config.Height {
		t.Errorf("unexpected board %dx%d", msg.Config.Width, msg.Config.Height)
	}
	if msg.Config.TickIntervalMs != 10 {
		t.Errorf("expected tick 10ms, got %d", msg.Config.TickIntervalMs)
	}

	msg = readMessage(t, conn)
	if msg.Type != "state" || msg.State == nil || msg.State.RunState != game.NotStarted {
		t.Fatalf("expected not started state, got %+v", msg)
	}

	if err := conn.WriteJSON(ClientMessage{Action: "start"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	moved := false
	for i := 0; i < 20 && !moved; i++ {
		msg = readMessage(t, conn)
		if msg.State != nil && msg.State.Ticks > 0 {
			moved = true
			if len(msg.State.Snake) < config.InitialSnakeLength {
				t.Errorf("unexpected snake %v", msg.State.Snake)
			}
		}
	}
	if !moved {
		t.Fatal("snake never moved after start")
	}

	if err := conn.WriteJSON(ClientMessage{Action: "quit"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	// Drain until the server closes the connection
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				t.Errorf("expected normal close, got %v", err)
			}
			break
		}
	}
}
