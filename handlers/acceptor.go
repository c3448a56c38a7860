package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"foodshare-api/allocation"
	"foodshare-api/models"
	"foodshare-api/statemachine"
	"foodshare-api/store"

	"github.com/gin-gonic/gin"
)

type AddAcceptorRequest struct {
	Name       string            `json:"name" binding:"required"`
	Email      string            `json:"email" binding:"required,email"`
	Phone      string            `json:"phone"`
	Location   string            `json:"location"`
	Food       string            `json:"food" binding:"required"`
	Quantity   int               `json:"quantity" binding:"required,min=1"`
	Membership models.Membership `json:"membership" binding:"omitempty,oneof=Basic Silver Gold"`
}

// ListAcceptors returns resolved requests (public)
func (h *Handler) ListAcceptors(c *gin.Context) {
	acceptors, err := h.Store.FindVerifiedAcceptors(c.Request.Context())
	if err != nil {
		storeError(c, "Acceptor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(acceptors), "acceptors": acceptors})
}

// GetAcceptor returns a single request
func (h *Handler) GetAcceptor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	acceptor, err := h.Store.FindAcceptorByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, "Acceptor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acceptor": acceptor})
}

// AddAcceptor submits a food request, pending admin approval
func (h *Handler) AddAcceptor(c *gin.Context) {
	var req AddAcceptorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acceptor := models.Acceptor{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Location:   req.Location,
		Food:       req.Food,
		Quantity:   req.Quantity,
		Membership: req.Membership,
	}
	ctx := c.Request.Context()
	if err := h.Store.CreateAcceptor(ctx, &acceptor); err != nil {
		storeError(c, "Acceptor", err)
		return
	}

	h.record(ctx, models.ActivityLog{
		ActorType:  models.ActorAcceptor,
		ActorName:  req.Name,
		ActorEmail: req.Email,
		Action:     "Requested Food",
		Details:    fmt.Sprintf("%d portions of %s", req.Quantity, req.Food),
	})
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": acceptor})
}

// VerifyAcceptor approves a request and runs the allocation engine on it
func (h *Handler) VerifyAcceptor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.Engine.Allocate(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Acceptor not found"})
		return
	case errors.Is(err, allocation.ErrAlreadyResolved):
		resolved := string(models.RequestResolved)
		c.JSON(http.StatusConflict, gin.H{
			"error":             "Acceptor request already resolved",
			"current_status":    resolved,
			"reason":            err.Error(),
			"valid_next_states": statemachine.Acceptor.ValidTransitionsFrom(resolved),
		})
		return
	case err != nil:
		storeError(c, "Acceptor", err)
		return
	}

	h.Hub.BroadcastActivity(out.Activity)
	c.JSON(http.StatusOK, out)
}

// DeleteAcceptor removes a request
func (h *Handler) DeleteAcceptor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteAcceptor(c.Request.Context(), id); err != nil {
		storeError(c, "Acceptor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Acceptor deleted"})
}

// AdminListAcceptors returns every request, newest first, admin only
func (h *Handler) AdminListAcceptors(c *gin.Context) {
	acceptors, err := h.Store.ListAcceptors(c.Request.Context())
	if err != nil {
		storeError(c, "Acceptor", err)
		return
	}
	summary := map[string]int{}
	for _, a := range acceptors {
		summary[string(a.Status())]++
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary, "count": len(acceptors), "acceptors": acceptors})
}
