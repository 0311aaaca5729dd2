package handlers

import (
	"time"

	"campusride/internal/services"
	"campusride/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"success": true,
		"users":   users,
		"count":   len(users),
	})
}

// DeleteUser handles DELETE /admin/users/:userId.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		utils.NotFoundResponse(c, "User")
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"success": true,
		"message": utils.MsgUserDeleted,
	})
}

// RideTypes handles GET /admin/ride-types.
func (h *AdminHandler) RideTypes(c *gin.Context) {
	dist, err := h.adminService.RideTypeDistribution(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"success": true,
		"labels":  dist.Labels,
		"data":    dist.Data,
		"colors":  dist.Colors,
	})
}

// MonthlyRides handles GET /admin/monthly-rides.
func (h *AdminHandler) MonthlyRides(c *gin.Context) {
	stats, err := h.adminService.MonthlyRides(c.Request.Context(), time.Now())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"success": true,
		"data":    stats.Data,
		"labels":  stats.Labels,
		"counts":  stats.Counts,
	})
}
