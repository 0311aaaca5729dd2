package routes

import (
	"campusride/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupStudentRoutes mounts the student directory CRUD.
func SetupStudentRoutes(r *gin.RouterGroup, studentHandler *handlers.StudentHandler) {
	student := r.Group("/student")
	{
		student.POST("", studentHandler.Create)
		student.GET("", studentHandler.List)
		student.GET("/:id", studentHandler.Get)
		student.PUT("/:id", studentHandler.Update)
		student.DELETE("/:id", studentHandler.Delete)
	}
}
