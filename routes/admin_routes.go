package routes

import (
	"campusride/internal/handlers"
	"campusride/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes mounts the dashboard endpoints behind admin auth.
func SetupAdminRoutes(r *gin.RouterGroup, adminHandler *handlers.AdminHandler, jwtSecret string) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.DELETE("/users/:userId", adminHandler.DeleteUser)
		admin.GET("/ride-types", adminHandler.RideTypes)
		admin.GET("/monthly-rides", adminHandler.MonthlyRides)
	}
}
