package routes

import (
	"beacon/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterTriggerRoutes registers the store-trigger endpoints.
func RegisterTriggerRoutes(r *gin.Engine, h *handlers.TriggerHandler) {
	api := r.Group("/api/triggers")
	{
		api.POST("/documents/created", h.DocumentCreatedHandler)
		api.POST("/documents/updated", h.DocumentUpdatedHandler)
		api.POST("/reminders/run", h.RunRemindersHandler)
	}
}

// RegisterRoutes wires up all endpoints.
func RegisterRoutes(r *gin.Engine, h *handlers.TriggerHandler) {
	RegisterTriggerRoutes(r, h)
	r.GET("/health", handlers.HealthHandler)
}
