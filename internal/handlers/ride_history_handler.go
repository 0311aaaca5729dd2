package handlers

import (
	"campusride/internal/services"
	"campusride/internal/utils"
	"campusride/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideHistoryHandler struct {
	historyService *services.RideHistoryService
}

func NewRideHistoryHandler(historyService *services.RideHistoryService) *RideHistoryHandler {
	return &RideHistoryHandler{historyService: historyService}
}

// ListByStudent handles GET /ride-history/student/:studentId. The response
// carries both the (possibly limited) list and stats over the full filtered
// set.
func (h *RideHistoryHandler) ListByStudent(c *gin.Context) {
	query := &validators.HistoryQuery{
		Status:    c.Query("status"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Limit:     c.Query("limit"),
	}

	history, stats, err := h.historyService.ListForStudent(c.Request.Context(), c.Param("studentId"), query)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"history": history,
		"stats":   stats,
	})
}

// Stats handles GET /ride-history/student/:studentId/stats.
func (h *RideHistoryHandler) Stats(c *gin.Context) {
	stats, err := h.historyService.StatsForStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"stats": stats})
}

// Get handles GET /ride-history/:id.
func (h *RideHistoryHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Ride history")
		return
	}

	history, err := h.historyService.Get(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"history": history})
}

// Rate handles POST /ride-history/:id/rate.
func (h *RideHistoryHandler) Rate(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Ride history")
		return
	}

	var request validators.RateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	history, err := h.historyService.Rate(c.Request.Context(), id, &request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"message": utils.MsgRatingSubmitted,
		"history": history,
	})
}
