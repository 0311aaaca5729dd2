package interfaces

import (
	"context"

	"campusride/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)

	// Update merges the given fields onto the stored document and returns the
	// resulting booking.
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Booking, error)

	// ListByStudent returns a student's bookings newest-created first. An
	// empty status means no status filter.
	ListByStudent(ctx context.Context, studentID string, status models.BookingStatus) ([]*models.Booking, error)

	// GetByIDs fetches the bookings for the given ids, keyed by id.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.Booking, error)

	// CountByVehicleType groups bookings in the given statuses by vehicle
	// type.
	CountByVehicleType(ctx context.Context, statuses []models.BookingStatus) (map[string]int64, error)

	// CountByRideDateRange counts bookings whose ride-date string falls in
	// [startDate, endDate] (lexical comparison on YYYY-MM-DD).
	CountByRideDateRange(ctx context.Context, startDate, endDate string, statuses []models.BookingStatus) (int64, error)
}
