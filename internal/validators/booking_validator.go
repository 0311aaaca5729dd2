package validators

import (
	"time"

	"campusride/internal/models"
	"campusride/internal/utils"
	"campusride/pkg/apperrors"
)

// BookingCreateRequest is the accepted shape of POST /booking. Any status or
// payment status the caller supplies is ignored: creation always forces
// confirmed/completed.
type BookingCreateRequest struct {
	StudentID    string `json:"studentId" validate:"required"`
	StudentEmail string `json:"studentEmail" validate:"required"`
	StudentName  string `json:"studentName"`

	Pickup   string `json:"pickup" validate:"required"`
	Dropoff  string `json:"dropoff" validate:"required"`
	RideDate string `json:"rideDate" validate:"required"`
	RideTime string `json:"rideTime" validate:"required"`

	Passengers  *int   `json:"passengers"`
	VehicleType string `json:"vehicleType"`

	EstimatedFare *float64 `json:"estimatedFare"`
	PaymentMethod string   `json:"paymentMethod"`

	PickupNotes        string `json:"pickupNotes"`
	AccessibilityNeeds string `json:"accessibilityNeeds"`

	Status string `json:"status"`
}

func ValidateBookingCreate(req *BookingCreateRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return apperrors.Validation("Missing required fields: studentId, studentEmail, pickup, dropoff, rideDate, rideTime")
	}
	return nil
}

// ToBooking applies the create defaults: one passenger, economy class.
func (req *BookingCreateRequest) ToBooking() *models.Booking {
	passengers := utils.DefaultPassengers
	if req.Passengers != nil {
		passengers = *req.Passengers
	}

	vehicleType := models.VehicleTypeEconomy
	if req.VehicleType != "" {
		vehicleType = models.VehicleType(req.VehicleType)
	}

	return &models.Booking{
		StudentID:          req.StudentID,
		StudentEmail:       req.StudentEmail,
		StudentName:        req.StudentName,
		Pickup:             req.Pickup,
		Dropoff:            req.Dropoff,
		RideDate:           req.RideDate,
		RideTime:           req.RideTime,
		Passengers:         passengers,
		VehicleType:        vehicleType,
		EstimatedFare:      req.EstimatedFare,
		PaymentMethod:      req.PaymentMethod,
		PickupNotes:        req.PickupNotes,
		AccessibilityNeeds: req.AccessibilityNeeds,
	}
}

// BookingUpdateRequest is the accepted shape of PUT /booking/:id. Only fields
// present in the body are merged onto the stored booking; the status
// transition graph is deliberately unconstrained.
type BookingUpdateRequest struct {
	Status        *string  `json:"status"`
	PaymentStatus *string  `json:"paymentStatus"`
	PaymentMethod *string  `json:"paymentMethod"`
	EstimatedFare *float64 `json:"estimatedFare"`
	ActualFare    *float64 `json:"actualFare"`

	Pickup   *string `json:"pickup"`
	Dropoff  *string `json:"dropoff"`
	RideDate *string `json:"rideDate"`
	RideTime *string `json:"rideTime"`

	Passengers  *int    `json:"passengers"`
	VehicleType *string `json:"vehicleType"`

	DriverID      *string `json:"driverId"`
	DriverName    *string `json:"driverName"`
	VehicleNumber *string `json:"vehicleNumber"`

	PickupNotes        *string `json:"pickupNotes"`
	AccessibilityNeeds *string `json:"accessibilityNeeds"`
	CancellationReason *string `json:"cancellationReason"`
	StudentName        *string `json:"studentName"`
}

// ToUpdates builds the field merge, stamping updatedAt and the terminal
// timestamp matching the requested status.
func (req *BookingUpdateRequest) ToUpdates(now time.Time) map[string]interface{} {
	updates := map[string]interface{}{"updated_at": now}

	setString := func(key string, v *string) {
		if v != nil {
			updates[key] = *v
		}
	}

	setString("status", req.Status)
	setString("payment_status", req.PaymentStatus)
	setString("payment_method", req.PaymentMethod)
	setString("pickup", req.Pickup)
	setString("dropoff", req.Dropoff)
	setString("ride_date", req.RideDate)
	setString("ride_time", req.RideTime)
	setString("vehicle_type", req.VehicleType)
	setString("driver_id", req.DriverID)
	setString("driver_name", req.DriverName)
	setString("vehicle_number", req.VehicleNumber)
	setString("pickup_notes", req.PickupNotes)
	setString("accessibility_needs", req.AccessibilityNeeds)
	setString("cancellation_reason", req.CancellationReason)
	setString("student_name", req.StudentName)

	if req.EstimatedFare != nil {
		updates["estimated_fare"] = *req.EstimatedFare
	}
	if req.ActualFare != nil {
		updates["actual_fare"] = *req.ActualFare
	}
	if req.Passengers != nil {
		updates["passengers"] = *req.Passengers
	}

	if req.Status != nil {
		switch models.BookingStatus(*req.Status) {
		case models.BookingStatusCompleted:
			updates["completed_at"] = now
		case models.BookingStatusCancelled:
			updates["cancelled_at"] = now
		}
	}

	return updates
}

// BookingCancelRequest is the optional body of DELETE /booking/:id.
type BookingCancelRequest struct {
	CancellationReason string `json:"cancellationReason"`
}
