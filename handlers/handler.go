package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"foodshare-api/allocation"
	"foodshare-api/config"
	"foodshare-api/models"
	"foodshare-api/realtime"
	"foodshare-api/store"

	"github.com/gin-gonic/gin"
)

// Handler carries the collaborators every route needs
type Handler struct {
	Store  store.Store
	Engine *allocation.Engine
	Hub    *realtime.Hub
	Config *config.Config
	Now    func() time.Time
}

func New(s store.Store, engine *allocation.Engine, hub *realtime.Hub, cfg *config.Config) *Handler {
	return &Handler{Store: s, Engine: engine, Hub: hub, Config: cfg, Now: time.Now}
}

// parseID reads the :id path parameter, answering 400 itself when it is not a positive integer
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: " + c.Param("id")})
		return 0, false
	}
	return uint(id), true
}

// storeError maps a store failure onto a response, naming the missing entity on 404
func storeError(c *gin.Context, entity string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
		return
	}
	log.Printf("⚠️ %s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// record appends an audit entry and pushes it to dashboards. Failures are
// logged only; the caller's operation has already succeeded.
func (h *Handler) record(ctx context.Context, entry models.ActivityLog) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = h.Now()
	}
	if err := h.Store.AppendActivity(ctx, &entry); err != nil {
		log.Printf("⚠️ activity %q by %s not recorded: %v", entry.Action, entry.ActorName, err)
		return
	}
	h.Hub.BroadcastActivity(&entry)
}
