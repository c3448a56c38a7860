package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodshare-api/models"

	"github.com/gorilla/websocket"
)

func setupServer(t *testing.T, hub *Hub) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := &Client{Subject: "admin", Conn: conn}
		hub.Register(cl)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(cl)
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestBroadcastActivity(t *testing.T) {
	hub := NewHub()
	url := setupServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()
	waitFor(t, func() bool { return hub.Len() == 1 })

	hub.BroadcastActivity(&models.ActivityLog{ID: 5, ActorType: models.ActorSystem, Action: "Matched & Priced"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if ev.Kind != "activity.created" || ev.Activity == nil || ev.Activity.ID != 5 {
		t.Errorf("unexpected event: %s", raw)
	}
}

func TestClientCloseUnregisters(t *testing.T) {
	hub := NewHub()
	url := setupServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	waitFor(t, func() bool { return hub.Len() == 1 })

	conn.Close()
	waitFor(t, func() bool { return hub.Len() == 0 })
}

func TestNilHubIsSafe(t *testing.T) {
	var hub *Hub
	hub.BroadcastActivity(&models.ActivityLog{ID: 1})
}
