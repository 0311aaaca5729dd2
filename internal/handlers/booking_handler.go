package handlers

import (
	"campusride/internal/models"
	"campusride/internal/services"
	"campusride/internal/utils"
	"campusride/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /booking.
func (h *BookingHandler) Create(c *gin.Context) {
	var request validators.BookingCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), &request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": utils.MsgBookingCreated,
		"booking": booking,
	})
}

// ListByStudent handles GET /booking/student/:studentId.
func (h *BookingHandler) ListByStudent(c *gin.Context) {
	studentID := c.Param("studentId")
	status := models.BookingStatus(c.Query("status"))

	bookings, err := h.bookingService.ListByStudent(c.Request.Context(), studentID, status)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"bookings": bookings})
}

// Get handles GET /booking/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Booking")
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"booking": booking})
}

// Update handles PUT /booking/:id. A terminal status in the body triggers
// history reconciliation.
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Booking")
		return
	}

	var request validators.BookingUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, &request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"message": utils.MsgBookingUpdated,
		"booking": booking,
	})
}

// Cancel handles DELETE /booking/:id: a soft cancel, not a removal.
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Booking")
		return
	}

	// The cancellation reason body is optional.
	var request validators.BookingCancelRequest
	_ = c.ShouldBindJSON(&request)

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, request.CancellationReason)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"message": utils.MsgBookingCancelled,
		"booking": booking,
	})
}
