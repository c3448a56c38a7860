package handlers

import (
	"net/http"
	"time"

	"foodshare-api/middleware"
	"foodshare-api/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const pingInterval = 25 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ActivitiesWS streams new audit entries to an admin dashboard
func (h *Handler) ActivitiesWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &realtime.Client{Subject: middleware.GetSubject(c), Conn: conn}
	h.Hub.Register(cl)

	done := make(chan struct{})
	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := cl.Ping(); err != nil {
					h.Hub.Unregister(cl)
					return
				}
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			close(done)
			h.Hub.Unregister(cl)
			return
		}
	}
}
