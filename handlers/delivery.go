package handlers

import (
	"net/http"

	"foodshare-api/middleware"
	"foodshare-api/models"
	"foodshare-api/statemachine"

	"github.com/gin-gonic/gin"
)

type AddDeliveryRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Location      string `json:"location" binding:"required"`
	VehicleType   string `json:"vehicleType" binding:"required"`
	LicenseNumber string `json:"licenseNumber"`
}

// AddDelivery registers a delivery volunteer, pending admin verification
func (h *Handler) AddDelivery(c *gin.Context) {
	var req AddDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person := models.DeliveryPerson{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Location:      req.Location,
		VehicleType:   req.VehicleType,
		LicenseNumber: req.LicenseNumber,
		Status:        models.DeliveryAvailable,
	}
	ctx := c.Request.Context()
	if err := h.Store.CreateDelivery(ctx, &person); err != nil {
		storeError(c, "Delivery person", err)
		return
	}

	h.record(ctx, models.ActivityLog{
		ActorType:  models.ActorDelivery,
		ActorName:  req.Name,
		ActorEmail: req.Email,
		Action:     "Registered Delivery",
		Details:    req.VehicleType + " in " + req.Location,
	})
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": person})
}

// VerifyDelivery approves a delivery volunteer
func (h *Handler) VerifyDelivery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	person, err := h.Store.FindDeliveryByID(ctx, id)
	if err != nil {
		storeError(c, "Delivery person", err)
		return
	}

	from := string(person.VerificationStatus())
	if err := statemachine.Delivery.CanTransition(from, string(models.StatusVerified), "admin"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    from,
			"reason":            err.Error(),
			"valid_next_states": statemachine.Delivery.ValidTransitionsFrom(from),
		})
		return
	}

	if err := h.Store.VerifyDelivery(ctx, id); err != nil {
		storeError(c, "Delivery person", err)
		return
	}
	h.record(ctx, models.ActivityLog{
		ActorType: models.ActorAdmin,
		ActorName: middleware.GetSubject(c),
		Action:    "Verified Delivery",
		Details:   person.Name,
	})
	person.IsVerified = true
	c.JSON(http.StatusOK, gin.H{"success": true, "data": person})
}

func (h *Handler) DeleteDelivery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteDelivery(c.Request.Context(), id); err != nil {
		storeError(c, "Delivery person", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Delivery person deleted"})
}

// AdminListDeliveries returns all delivery people, newest first, admin only
func (h *Handler) AdminListDeliveries(c *gin.Context) {
	people, err := h.Store.ListDeliveries(c.Request.Context())
	if err != nil {
		storeError(c, "Delivery person", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(people), "deliveries": people})
}
