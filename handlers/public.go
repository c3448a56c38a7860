package handlers

import (
	"net/http"

	"foodshare-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Health reports liveness and the active storage engine
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "FoodShare Matching API",
		"storage": h.Store.Engine(),
		"version": "1.0.0",
	})
}

func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "🍽 Welcome to the FoodShare Matching API",
		"docs":    "/api/state-machine",
		"health":  "/health",
		"portals": []string{"restaurant", "acceptor", "delivery", "admin"},
	})
}

// GetStateMachineInfo returns the lifecycles of every record type
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	machines := []*statemachine.Machine{statemachine.Acceptor, statemachine.Restaurant, statemachine.Delivery}
	info := gin.H{}
	for _, m := range machines {
		info[m.Name] = m.Transitions()
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machines":  info,
		"terminal_states": []string{"RESOLVED", "VERIFIED"},
		"description":     "Acceptor requests resolve once, when the allocation engine runs; donors and couriers are verified by an admin",
	})
}
