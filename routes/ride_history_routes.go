package routes

import (
	"campusride/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRideHistoryRoutes mounts the archival/reporting endpoints.
func SetupRideHistoryRoutes(r *gin.RouterGroup, historyHandler *handlers.RideHistoryHandler) {
	history := r.Group("/ride-history")
	{
		history.GET("/student/:studentId", historyHandler.ListByStudent)
		history.GET("/student/:studentId/stats", historyHandler.Stats)
		history.GET("/:id", historyHandler.Get)
		history.POST("/:id/rate", historyHandler.Rate)
	}
}
