package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHub() *Hub {
	return NewHub(slog.Default())
}

func runHub(t *testing.T, h *Hub) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.Run(ctx)
}

func registerClient(t *testing.T, h *Hub, sub Subscription) *Client {
	t.Helper()
	client := &Client{hub: h, send: make(chan []byte, 16), sub: sub}
	h.register <- client
	return client
}

func receive(t *testing.T, c *Client) *Event {
	t.Helper()
	select {
	case msg := <-c.send:
		var ev Event
		require.NoError(t, json.Unmarshal(msg, &ev))
		return &ev
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for broadcast")
		return nil
	}
}

func assertNothing(t *testing.T, c *Client) {
	t.Helper()
	select {
	case msg := <-c.send:
		t.Fatalf("unexpected message %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestShouldSend(t *testing.T) {
	created := &Event{Type: EventProjectCreated, Scenario: "yesil"}
	scored := &Event{Type: EventRiskScored, Scenario: "merkez"}

	tests := []struct {
		name string
		sub  Subscription
		ev   *Event
		want bool
	}{
		{"all events", Subscription{AllEvents: true}, scored, true},
		{"empty subscription", Subscription{}, created, true},
		{"type match", Subscription{EventTypes: []EventType{EventProjectCreated}}, created, true},
		{"type mismatch", Subscription{EventTypes: []EventType{EventProjectCreated}}, scored, false},
		{"scenario match", Subscription{Scenarios: []string{"yesil"}}, created, true},
		{"scenario mismatch", Subscription{Scenarios: []string{"yesil"}}, scored, false},
		{"both filters", Subscription{EventTypes: []EventType{EventRiskScored}, Scenarios: []string{"merkez"}}, scored, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldSend(&Client{sub: tt.sub}, tt.ev))
		})
	}
}

func TestHub_RegisterUnregister(t *testing.T) {
	h := testHub()
	runHub(t, h)

	client := registerClient(t, h, Subscription{AllEvents: true})
	require.Eventually(t, func() bool {
		return h.Stats()["connected_clients"].(int) == 1
	}, time.Second, 10*time.Millisecond)

	h.unregister <- client
	require.Eventually(t, func() bool {
		return h.Stats()["connected_clients"].(int) == 0
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, int64(1), h.Stats()["total_clients"])
	assert.Equal(t, int64(1), h.Stats()["peak_clients"])
}

func TestHub_BroadcastFillsTimestamp(t *testing.T) {
	h := testHub()
	runHub(t, h)
	client := registerClient(t, h, Subscription{AllEvents: true})

	h.Broadcast(&Event{Type: EventProjectCreated, Scenario: "gelisen", Data: map[string]any{"id": 1}})

	ev := receive(t, client)
	assert.Equal(t, EventProjectCreated, ev.Type)
	assert.Equal(t, "gelisen", ev.Scenario)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestHub_FilteredBroadcast(t *testing.T) {
	h := testHub()
	runHub(t, h)
	client := registerClient(t, h, Subscription{EventTypes: []EventType{EventProjectCreated}})

	h.Broadcast(&Event{Type: EventRiskScored})
	assertNothing(t, client)

	h.Broadcast(&Event{Type: EventProjectCreated})
	assert.Equal(t, EventProjectCreated, receive(t, client).Type)
}

func TestHub_ContextCancellation(t *testing.T) {
	h := testHub()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop after context cancellation")
	}

	// Upgrades after shutdown are refused.
	w := httptest.NewRecorder()
	h.HandleWebSocket(w, httptest.NewRequest("GET", "/ws", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestClient_ReadPumpExitsAfterHubStops(t *testing.T) {
	h := testHub()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	conns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- conn
	}))
	defer srv.Close()

	peer, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)

	client := &Client{hub: h, conn: <-conns, send: make(chan []byte, 1), sub: Subscription{AllEvents: true}}
	exited := make(chan struct{})
	go func() {
		client.readPump()
		close(exited)
	}()
	_ = peer.Close()

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("read pump blocked on unregister after hub stopped")
	}
}

func TestHub_WebSocketEndToEnd(t *testing.T) {
	h := testHub()
	runHub(t, h)

	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return h.Stats()["connected_clients"].(int) == 1
	}, time.Second, 10*time.Millisecond)

	h.Broadcast(&Event{Type: EventRiskScored, Scenario: "merkez", Data: map[string]any{"score": 45}})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, EventRiskScored, ev.Type)
	assert.Equal(t, float64(45), ev.Data.(map[string]any)["score"])
}

func TestOriginChecker(t *testing.T) {
	req := func(origin string) *http.Request {
		r := httptest.NewRequest("GET", "/ws", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	anyOrigin := originChecker([]string{"*"})
	assert.True(t, anyOrigin(req("https://x.example")))

	listed := originChecker([]string{"https://harita.example"})
	assert.True(t, listed(req("https://harita.example")))
	assert.True(t, listed(req("")))
	assert.False(t, listed(req("https://evil.example")))
}
