package validators

import (
	"testing"
	"time"

	"campusride/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string     { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestValidateBookingCreateRequiredFields(t *testing.T) {
	valid := BookingCreateRequest{
		StudentID:    "stu-100",
		StudentEmail: "jdoe@pfw.edu",
		Pickup:       "Walb Union",
		Dropoff:      "Kettler Hall",
		RideDate:     "2026-09-01",
		RideTime:     "14:30",
	}
	require.NoError(t, ValidateBookingCreate(&valid))

	blank := func(mutate func(*BookingCreateRequest)) *BookingCreateRequest {
		req := valid
		mutate(&req)
		return &req
	}

	cases := map[string]*BookingCreateRequest{
		"studentId":    blank(func(r *BookingCreateRequest) { r.StudentID = "" }),
		"studentEmail": blank(func(r *BookingCreateRequest) { r.StudentEmail = "" }),
		"pickup":       blank(func(r *BookingCreateRequest) { r.Pickup = "" }),
		"dropoff":      blank(func(r *BookingCreateRequest) { r.Dropoff = "" }),
		"rideDate":     blank(func(r *BookingCreateRequest) { r.RideDate = "" }),
		"rideTime":     blank(func(r *BookingCreateRequest) { r.RideTime = "" }),
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateBookingCreate(req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Missing required fields")
		})
	}
}

func TestToBookingDefaults(t *testing.T) {
	req := &BookingCreateRequest{
		StudentID:    "stu-100",
		StudentEmail: "jdoe@pfw.edu",
		Pickup:       "Walb Union",
		Dropoff:      "Kettler Hall",
		RideDate:     "2026-09-01",
		RideTime:     "14:30",
	}

	booking := req.ToBooking()
	assert.Equal(t, 1, booking.Passengers)
	assert.Equal(t, models.VehicleTypeEconomy, booking.VehicleType)

	req.Passengers = intPtr(4)
	req.VehicleType = "premium"
	booking = req.ToBooking()
	assert.Equal(t, 4, booking.Passengers)
	assert.Equal(t, models.VehicleTypePremium, booking.VehicleType)
}

func TestBookingUpdateToUpdates(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	req := &BookingUpdateRequest{
		Status:     strPtr("completed"),
		ActualFare: floatPtr(11.75),
		DriverName: strPtr("Alex"),
	}

	updates := req.ToUpdates(now)

	assert.Equal(t, "completed", updates["status"])
	assert.Equal(t, 11.75, updates["actual_fare"])
	assert.Equal(t, "Alex", updates["driver_name"])
	assert.Equal(t, now, updates["updated_at"])
	assert.Equal(t, now, updates["completed_at"])
	assert.NotContains(t, updates, "cancelled_at")
	assert.NotContains(t, updates, "pickup")
}

func TestBookingUpdateToUpdatesCancelled(t *testing.T) {
	now := time.Now()
	updates := (&BookingUpdateRequest{Status: strPtr("cancelled")}).ToUpdates(now)

	assert.Equal(t, now, updates["cancelled_at"])
	assert.NotContains(t, updates, "completed_at")
}

func TestBookingUpdateToUpdatesNonTerminal(t *testing.T) {
	updates := (&BookingUpdateRequest{Status: strPtr("in-progress")}).ToUpdates(time.Now())

	assert.NotContains(t, updates, "completed_at")
	assert.NotContains(t, updates, "cancelled_at")
}
