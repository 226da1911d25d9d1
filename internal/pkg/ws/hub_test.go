package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		room := r.URL.Query().Get("room")
		_ = hub.Serve(w, r, room)
	}))
	t.Cleanup(server.Close)
	return hub, server
}

func dialRoom(t *testing.T, server *httptest.Server, room string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?room=" + room
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSubscriber(t *testing.T, hub *Hub, room string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		n := len(hub.rooms[room])
		hub.mu.RUnlock()
		if n > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no subscriber registered for room %s", room)
}

func TestBroadcast_ReachesRoomSubscribers(t *testing.T) {
	hub, server := newTestHub(t)
	conn := dialRoom(t, server, "team-1")
	waitForSubscriber(t, hub, "team-1")

	hub.Broadcast("team-1", map[string]string{"message": "practice at 6pm"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "practice at 6pm", payload["message"])
}

func TestBroadcast_RoomsAreIsolated(t *testing.T) {
	hub, server := newTestHub(t)
	conn1 := dialRoom(t, server, "team-1")
	conn2 := dialRoom(t, server, "team-2")
	waitForSubscriber(t, hub, "team-1")
	waitForSubscriber(t, hub, "team-2")

	hub.Broadcast("team-1", map[string]string{"message": "only team one"})

	conn1.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn1.ReadMessage()
	require.NoError(t, err)

	conn2.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = conn2.ReadMessage()
	assert.Error(t, err)
}

func TestBroadcast_EmptyRoomIsNoOp(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	// Must not panic or block with no subscribers
	hub.Broadcast("team-unknown", map[string]string{"message": "anyone there"})
}
