package routes

import (
	"foodshare-api/handlers"
	"foodshare-api/middleware"
	"foodshare-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/health", h.Health)
	r.GET("/", h.Welcome)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Donors
		public.GET("/restaurants", h.ListRestaurants)
		public.GET("/restaurants/:id", h.GetRestaurant)
		public.POST("/add-restaurant", h.AddRestaurant)

		// Acceptors
		public.GET("/acceptors", h.ListAcceptors)
		public.GET("/get-acceptor/:id", h.GetAcceptor)
		public.POST("/add-acceptor", h.AddAcceptor)

		// Delivery volunteers
		public.POST("/add-delivery", h.AddDelivery)

		// Admin login
		public.POST("/verify-admin", h.VerifyAdmin)

		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.PUT("/verify-restaurant/:id", h.VerifyRestaurant)
		admin.DELETE("/delete-restaurant/:id", h.DeleteRestaurant)
		admin.GET("/admin/restaurants", h.AdminListRestaurants)

		// Approving a request runs the allocation engine
		admin.PUT("/verify-acceptor/:id", h.VerifyAcceptor)
		admin.DELETE("/delete-acceptor/:id", h.DeleteAcceptor)
		admin.GET("/admin/acceptors", h.AdminListAcceptors)

		admin.PUT("/verify-delivery/:id", h.VerifyDelivery)
		admin.DELETE("/delete-delivery/:id", h.DeleteDelivery)
		admin.GET("/admin/deliveries", h.AdminListDeliveries)

		admin.GET("/admin/activities", h.AdminListActivities)
		admin.GET("/admin/activities/ws", h.ActivitiesWS)
		admin.DELETE("/delete-activity/:id", h.DeleteActivity)

		admin.GET("/admin/db-status", h.DBStatus)
		admin.GET("/admin/storage-stats", h.StorageStats)
	}
}
