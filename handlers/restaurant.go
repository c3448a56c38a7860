package handlers

import (
	"fmt"
	"net/http"
	"time"

	"foodshare-api/middleware"
	"foodshare-api/models"
	"foodshare-api/statemachine"

	"github.com/gin-gonic/gin"
)

type AddRestaurantRequest struct {
	Name        string            `json:"name" binding:"required"`
	Email       string            `json:"email" binding:"required,email"`
	Phone       string            `json:"phone" binding:"required"`
	Location    string            `json:"location" binding:"required"`
	Description string            `json:"description"`
	Membership  models.Membership `json:"membership" binding:"omitempty,oneof=Basic Silver Gold"`
	Food        string            `json:"food" binding:"required"`
	Quantity    int               `json:"quantity" binding:"required,min=1"`
	Category    string            `json:"category"`
	FoodValue   *float64          `json:"foodValue" binding:"omitempty,gte=0"`
	ExpiryHours *float64          `json:"expiryHours" binding:"omitempty,gt=0"`
}

// ListRestaurants returns verified restaurants (public)
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.Store.FindVerifiedRestaurants(c.Request.Context())
	if err != nil {
		storeError(c, "Restaurant", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetRestaurant returns a single restaurant with its items
func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	restaurant, err := h.Store.FindRestaurantByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, "Restaurant", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// AddRestaurant submits a donor with its first listing, pending admin verification
func (h *Handler) AddRestaurant(c *gin.Context) {
	var req AddRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value := 100.0
	if req.FoodValue != nil {
		value = *req.FoodValue
	}
	ttl := h.Config.DefaultExpiry()
	if req.ExpiryHours != nil {
		ttl = time.Duration(*req.ExpiryHours * float64(time.Hour))
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		Description: req.Description,
		Membership:  req.Membership,
		Items: []models.FoodItem{{
			Food:       req.Food,
			Quantity:   req.Quantity,
			Category:   req.Category,
			FoodValue:  value,
			ExpiryTime: h.Now().Add(ttl),
		}},
	}
	ctx := c.Request.Context()
	if err := h.Store.CreateRestaurant(ctx, &restaurant); err != nil {
		storeError(c, "Restaurant", err)
		return
	}

	h.record(ctx, models.ActivityLog{
		ActorType:  models.ActorRestaurant,
		ActorName:  req.Name,
		ActorEmail: req.Email,
		Action:     "Donated Food",
		Details:    fmt.Sprintf("%d portions of %s (Val: %.2f)", req.Quantity, req.Food, value),
	})
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Restaurant added, awaiting verification", "data": restaurant})
}

// VerifyRestaurant lets an admin approve a donor for matching
func (h *Handler) VerifyRestaurant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	restaurant, err := h.Store.FindRestaurantByID(ctx, id)
	if err != nil {
		storeError(c, "Restaurant", err)
		return
	}

	from := string(restaurant.Status())
	if err := statemachine.Restaurant.CanTransition(from, string(models.StatusVerified), "admin"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    from,
			"reason":            err.Error(),
			"valid_next_states": statemachine.Restaurant.ValidTransitionsFrom(from),
		})
		return
	}

	if err := h.Store.VerifyRestaurant(ctx, id); err != nil {
		storeError(c, "Restaurant", err)
		return
	}
	h.record(ctx, models.ActivityLog{
		ActorType: models.ActorAdmin,
		ActorName: middleware.GetSubject(c),
		Action:    "Verified Restaurant",
		Details:   restaurant.Name,
	})
	restaurant.IsVerified = true
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Restaurant verified", "data": restaurant})
}

// DeleteRestaurant removes a donor and its listings
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteRestaurant(c.Request.Context(), id); err != nil {
		storeError(c, "Restaurant", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Restaurant deleted"})
}

// AdminListRestaurants returns all restaurants, newest first, admin only
func (h *Handler) AdminListRestaurants(c *gin.Context) {
	restaurants, err := h.Store.ListRestaurants(c.Request.Context())
	if err != nil {
		storeError(c, "Restaurant", err)
		return
	}

	// dashboard summary by verification state
	summary := map[string]int{}
	for _, r := range restaurants {
		summary[string(r.Status())]++
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary, "count": len(restaurants), "restaurants": restaurants})
}
