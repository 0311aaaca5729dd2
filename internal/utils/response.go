package utils

import (
	"net/http"

	"campusride/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// The wire format follows the original deployment: failures are always
// {"error": "<message>"} and successes carry the resource(s) directly,
// optionally with a human-readable "message".

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// AppErrorResponse maps an error through the taxonomy; anything unknown
// becomes an opaque 500.
func AppErrorResponse(c *gin.Context, err error) {
	appErr := apperrors.Get(err)
	ErrorResponse(c, appErr.Status, appErr.Message)
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, message)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found")
}

func OKResponse(c *gin.Context, body gin.H) {
	c.JSON(http.StatusOK, body)
}

func CreatedResponse(c *gin.Context, body gin.H) {
	c.JSON(http.StatusCreated, body)
}
