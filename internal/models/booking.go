package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string
type PaymentStatus string
type VehicleType string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in-progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"

	VehicleTypeEconomy VehicleType = "economy"
	VehicleTypePremium VehicleType = "premium"
	VehicleTypeXL      VehicleType = "xl"
)

// Terminal reports whether no further lifecycle progression is expected.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

func (v VehicleType) Valid() bool {
	switch v {
	case VehicleTypeEconomy, VehicleTypePremium, VehicleTypeXL:
		return true
	}
	return false
}

// Booking is a ride request/commitment. Ride date is a calendar-date string
// (YYYY-MM-DD) rather than a timestamp so that range queries stay lexical.
type Booking struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentID    string             `json:"studentId" bson:"student_id"`
	StudentEmail string             `json:"studentEmail" bson:"student_email"`
	StudentName  string             `json:"studentName,omitempty" bson:"student_name,omitempty"`

	Pickup   string `json:"pickup" bson:"pickup"`
	Dropoff  string `json:"dropoff" bson:"dropoff"`
	RideDate string `json:"rideDate" bson:"ride_date"`
	RideTime string `json:"rideTime" bson:"ride_time"`

	Passengers  int         `json:"passengers" bson:"passengers"`
	VehicleType VehicleType `json:"vehicleType" bson:"vehicle_type"`

	EstimatedFare *float64      `json:"estimatedFare,omitempty" bson:"estimated_fare,omitempty"`
	ActualFare    *float64      `json:"actualFare,omitempty" bson:"actual_fare,omitempty"`
	PaymentMethod string        `json:"paymentMethod,omitempty" bson:"payment_method,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus" bson:"payment_status"`

	Status BookingStatus `json:"status" bson:"status"`

	DriverID      string `json:"driverId,omitempty" bson:"driver_id,omitempty"`
	DriverName    string `json:"driverName,omitempty" bson:"driver_name,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty" bson:"vehicle_number,omitempty"`

	PickupNotes        string `json:"pickupNotes,omitempty" bson:"pickup_notes,omitempty"`
	AccessibilityNeeds string `json:"accessibilityNeeds,omitempty" bson:"accessibility_needs,omitempty"`

	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty" bson:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty" bson:"cancelled_at,omitempty"`

	CancellationReason string `json:"cancellationReason,omitempty" bson:"cancellation_reason,omitempty"`
}

// Fare returns the fare to archive on completion: the actual fare when the
// driver recorded one, otherwise the estimate.
func (b *Booking) Fare() *float64 {
	if b.ActualFare != nil {
		return b.ActualFare
	}
	return b.EstimatedFare
}
