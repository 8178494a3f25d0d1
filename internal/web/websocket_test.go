package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHubRun_RegisterBroadcastUnregisterFlow(t *testing.T) {
	h := NewHub()
	go h.Run()

	client := &Client{
		hub:  h,
		send: make(chan []byte, 1),
	}

	h.register <- client
	waitForHubClientCount(t, h, 1)

	h.broadcast <- []byte("hello")
	select {
	case msg := <-client.send:
		if string(msg) != "hello" {
			t.Fatalf("unexpected broadcast payload: %s", string(msg))
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting broadcast message")
	}

	h.unregister <- client
	waitForHubClientCount(t, h, 0)

	select {
	case _, ok := <-client.send:
		if ok {
			t.Fatal("expected client send channel to be closed")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting client channel close")
	}
}

func TestHubRun_RemovesClientWhenSendChannelIsBlocked(t *testing.T) {
	h := NewHub()
	go h.Run()

	// Unbuffered channel with no reader blocks the broadcast send,
	// which should evict the client instead of stalling the hub.
	blockedClient := &Client{
		hub:  h,
		send: make(chan []byte),
	}

	h.register <- blockedClient
	waitForHubClientCount(t, h, 1)

	h.broadcast <- []byte("x")
	waitForHubClientCount(t, h, 0)
}

func TestHandleWebSocket_BroadcastReachesClient(t *testing.T) {
	s, ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	defer conn.Close()

	waitUntil(t, 2*time.Second, func() bool {
		s.hub.mu.RLock()
		defer s.hub.mu.RUnlock()
		return len(s.hub.clients) == 1
	})

	s.hub.broadcast <- []byte(`{"type":"ping"}`)

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("failed to set read deadline: %v", err)
	}
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read websocket message: %v", err)
	}
	if string(msg) != `{"type":"ping"}` {
		t.Fatalf("unexpected websocket message: %s", string(msg))
	}
}

func TestHandleWebSocket_InvalidHandshakeStatus(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ws", nil)
	rr := httptest.NewRecorder()
	s.handleWebSocket(rr, req)

	if rr.Code == http.StatusOK {
		t.Fatalf("expected non-200 for invalid handshake, got %d", rr.Code)
	}
}

func waitForHubClientCount(t *testing.T, h *Hub, expected int) {
	t.Helper()
	waitUntil(t, 2*time.Second, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return len(h.clients) == expected
	})
}

func waitUntil(t *testing.T, timeout time.Duration, condition func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timeout waiting for condition")
}
