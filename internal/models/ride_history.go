package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DestinationType string

const (
	DestinationOnCampus  DestinationType = "on-campus"
	DestinationOffCampus DestinationType = "off-campus"
)

// RideHistory is the archival record derived from exactly one terminal
// booking. Ride fields are denormalized from the booking at creation time so
// reads avoid a join. A unique index on booking_id guarantees at most one
// record per booking.
type RideHistory struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BookingID primitive.ObjectID `json:"bookingId" bson:"booking_id"`

	StudentID    string `json:"studentId" bson:"student_id"`
	StudentEmail string `json:"studentEmail" bson:"student_email"`
	StudentName  string `json:"studentName,omitempty" bson:"student_name,omitempty"`

	Pickup   string `json:"pickup" bson:"pickup"`
	Dropoff  string `json:"dropoff" bson:"dropoff"`
	RideDate string `json:"rideDate" bson:"ride_date"`
	RideTime string `json:"rideTime,omitempty" bson:"ride_time,omitempty"`

	Fare          *float64 `json:"fare,omitempty" bson:"fare,omitempty"`
	PaymentMethod string   `json:"paymentMethod,omitempty" bson:"payment_method,omitempty"`

	// Only completed and cancelled are valid here.
	Status      BookingStatus `json:"status" bson:"status"`
	CompletedAt *time.Time    `json:"completedAt,omitempty" bson:"completed_at,omitempty"`
	CancelledAt *time.Time    `json:"cancelledAt,omitempty" bson:"cancelled_at,omitempty"`

	DriverID      string `json:"driverId,omitempty" bson:"driver_id,omitempty"`
	DriverName    string `json:"driverName,omitempty" bson:"driver_name,omitempty"`
	VehicleType   string `json:"vehicleType,omitempty" bson:"vehicle_type,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty" bson:"vehicle_number,omitempty"`

	Rating   *int       `json:"rating,omitempty" bson:"rating,omitempty"`
	Feedback string     `json:"feedback,omitempty" bson:"feedback,omitempty"`
	RatedAt  *time.Time `json:"ratedAt,omitempty" bson:"rated_at,omitempty"`

	// Trip details; not populated by the booking-completion path.
	Distance    *float64        `json:"distance,omitempty" bson:"distance,omitempty"` // miles
	Duration    *int            `json:"duration,omitempty" bson:"duration,omitempty"` // minutes
	Destination DestinationType `json:"destination,omitempty" bson:"destination,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// BookingSummary is the slice of the originating booking attached to history
// entries for display.
type BookingSummary struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Pickup   string             `json:"pickup" bson:"pickup"`
	Dropoff  string             `json:"dropoff" bson:"dropoff"`
	RideDate string             `json:"rideDate" bson:"ride_date"`
}

// RideHistoryEntry is a history record enriched with its booking summary.
type RideHistoryEntry struct {
	RideHistory
	Booking *BookingSummary `json:"booking,omitempty"`
}

// RideStats is the per-student statistics summary. Monetary and distance
// totals are rendered as fixed-precision strings to keep the wire format
// stable.
type RideStats struct {
	TotalRides     int     `json:"totalRides"`
	CompletedRides int     `json:"completedRides"`
	CancelledRides int     `json:"cancelledRides"`
	TotalSpent     string  `json:"totalSpent"`
	AverageRating  *string `json:"averageRating"`
}

// RideStatsDetailed extends RideStats for the dedicated stats endpoint.
type RideStatsDetailed struct {
	RideStats
	TotalDistance   string `json:"totalDistance"`
	TotalDuration   int    `json:"totalDuration"`
	FavoritePickup  *string `json:"favoritePickup"`
	FavoriteDropoff *string `json:"favoriteDropoff"`
	OnCampusRides   int    `json:"onCampusRides"`
	OffCampusRides  int    `json:"offCampusRides"`
}
