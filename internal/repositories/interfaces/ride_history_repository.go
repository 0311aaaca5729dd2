package interfaces

import (
	"context"
	"time"

	"campusride/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RideHistoryFilter narrows a per-student history listing. Zero values mean
// "no filter".
type RideHistoryFilter struct {
	Status    models.BookingStatus
	StartDate *time.Time
	EndDate   *time.Time
}

type RideHistoryRepository interface {
	// Create inserts a history record. A second insert for the same booking
	// id fails with apperrors.ErrHistoryExists (backed by a unique index).
	Create(ctx context.Context, history *models.RideHistory) error

	GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideHistory, error)

	// ExistsForBooking reports whether a record already references the
	// booking.
	ExistsForBooking(ctx context.Context, bookingID primitive.ObjectID) (bool, error)

	// ListByStudent returns matching records newest-created first. Callers
	// apply any display limit themselves; statistics are computed over the
	// full filtered set.
	ListByStudent(ctx context.Context, studentID string, filter RideHistoryFilter) ([]*models.RideHistory, error)

	// Update merges the given fields and returns the resulting record.
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.RideHistory, error)
}
