package handlers

import (
	"crypto/subtle"
	"net/http"

	"foodshare-api/middleware"
	"foodshare-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type VerifyAdminRequest struct {
	AdminID  string `json:"adminId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyAdmin checks the admin credentials and returns a JWT
func (h *Handler) VerifyAdmin(c *gin.Context) {
	var req VerifyAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	idOK := subtle.ConstantTimeCompare([]byte(req.AdminID), []byte(h.Config.AdminID)) == 1
	pwErr := bcrypt.CompareHashAndPassword(h.Config.AdminPasswordHash, []byte(req.Password))
	if !idOK || pwErr != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid admin credentials"})
		return
	}

	token, err := middleware.GenerateToken(req.AdminID, models.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// DBStatus reports which storage engine is serving requests
func (h *Handler) DBStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Connected to " + h.Store.Engine()})
}

// StorageStats returns record counts for the admin dashboard
func (h *Handler) StorageStats(c *gin.Context) {
	stats, err := h.Store.Stats(c.Request.Context())
	if err != nil {
		storeError(c, "Stats", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"engine":            h.Store.Engine(),
		"counts":            stats,
		"websocket_clients": h.Hub.Len(),
	})
}

// AdminListActivities returns the audit trail, newest first
func (h *Handler) AdminListActivities(c *gin.Context) {
	logs, err := h.Store.ListActivities(c.Request.Context())
	if err != nil {
		storeError(c, "Activity", err)
		return
	}
	if actor := c.Query("actor_type"); actor != "" {
		filtered := logs[:0]
		for _, l := range logs {
			if l.ActorType == actor {
				filtered = append(filtered, l)
			}
		}
		logs = filtered
	}
	c.JSON(http.StatusOK, gin.H{"count": len(logs), "activities": logs})
}

func (h *Handler) DeleteActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteActivity(c.Request.Context(), id); err != nil {
		storeError(c, "Activity", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
