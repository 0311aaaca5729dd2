package routes

import (
	"campusride/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes mounts the booking lifecycle endpoints.
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	booking := r.Group("/booking")
	{
		booking.POST("", bookingHandler.Create)
		booking.GET("/student/:studentId", bookingHandler.ListByStudent)
		booking.GET("/:id", bookingHandler.Get)
		booking.PUT("/:id", bookingHandler.Update)
		booking.DELETE("/:id", bookingHandler.Cancel)
	}
}
