package handlers

import (
	"campusride/internal/services"
	"campusride/internal/utils"
	"campusride/internal/validators"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var request validators.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), &request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":   utils.MsgSignupSuccess,
		"userId":    result.UserID,
		"role":      result.Role,
		"studentId": result.StudentID,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var request validators.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &request, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"message": utils.MsgLoginSuccess,
		"token":   result.Token,
		"user": gin.H{
			"id":          result.User.ID,
			"name":        result.User.Name,
			"email":       result.User.Email,
			"role":        result.User.Role,
			"lastLoginAt": result.User.LastLoginAt,
			"loginCount":  result.User.LoginCount,
		},
		"student": result.Student,
	})
}

// ForgotPassword handles POST /auth/forgot-password. The message never
// reveals whether the account exists; the token rides along only because
// delivery is simulated.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var request validators.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if err := validators.ValidateForgotPassword(&request); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	result, err := h.authService.ForgotPassword(c.Request.Context(), request.Email)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	body := gin.H{"message": utils.MsgResetRequested}
	if result != nil {
		body["resetToken"] = result.Token
		body["expiresAt"] = result.ExpiresAt
	}

	utils.OKResponse(c, body)
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var request validators.ResetPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), &request); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"message": utils.MsgPasswordReset})
}
