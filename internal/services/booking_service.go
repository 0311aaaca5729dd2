package services

import (
	"context"
	"time"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/internal/validators"
	"campusride/pkg/apperrors"
	"campusride/pkg/cache"
	"campusride/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingService owns the booking lifecycle: creation, field merges, soft
// cancellation, and the reconciliation rule that a booking reaching a
// terminal status produces exactly one ride-history record.
type BookingService struct {
	bookingRepo interfaces.BookingRepository
	historyRepo interfaces.RideHistoryRepository
	cache       cache.Cache
	logger      *logger.Logger
}

func NewBookingService(bookingRepo interfaces.BookingRepository, historyRepo interfaces.RideHistoryRepository, statsCache cache.Cache, log *logger.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		historyRepo: historyRepo,
		cache:       statsCache,
		logger:      log,
	}
}

// Create books a ride. There is no payment-capture or approval step, so the
// booking is confirmed and paid immediately regardless of any status the
// caller supplied.
func (s *BookingService) Create(ctx context.Context, req *validators.BookingCreateRequest) (*models.Booking, error) {
	if err := validators.ValidateBookingCreate(req); err != nil {
		return nil, err
	}

	booking := req.ToBooking()
	booking.Status = models.BookingStatusConfirmed
	booking.PaymentStatus = models.PaymentStatusCompleted

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.WithBookingID(booking.ID).WithStudentID(booking.StudentID).Info("booking created")
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// UpdateStatus merges arbitrary field updates onto the booking. Status
// transitions are not validated: any status may replace any other. When the
// resulting status is terminal, the booking is reconciled into ride history.
func (s *BookingService) UpdateStatus(ctx context.Context, id primitive.ObjectID, req *validators.BookingUpdateRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.Update(ctx, id, req.ToUpdates(time.Now()))
	if err != nil {
		return nil, err
	}

	if booking.Status.Terminal() {
		if err := s.reconcile(ctx, booking); err != nil {
			return nil, err
		}
	}

	return booking, nil
}

// Cancel is a soft cancel: the booking stays in the store with status
// cancelled. Triggers the same reconciliation as UpdateStatus.
func (s *BookingService) Cancel(ctx context.Context, id primitive.ObjectID, reason string) (*models.Booking, error) {
	now := time.Now()
	updates := map[string]interface{}{
		"status":              models.BookingStatusCancelled,
		"cancelled_at":        now,
		"cancellation_reason": reason,
		"updated_at":          now,
	}

	booking, err := s.bookingRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	if err := s.reconcile(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *BookingService) ListByStudent(ctx context.Context, studentID string, status models.BookingStatus) ([]*models.Booking, error) {
	return s.bookingRepo.ListByStudent(ctx, studentID, status)
}

// reconcile derives the archival ride-history record from a terminal booking.
// It must be safe to invoke repeatedly for the same booking: the existence
// check skips the common duplicate, and the unique index on booking_id
// swallows the concurrent one.
func (s *BookingService) reconcile(ctx context.Context, booking *models.Booking) error {
	exists, err := s.historyRepo.ExistsForBooking(ctx, booking.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	history := &models.RideHistory{
		BookingID:     booking.ID,
		StudentID:     booking.StudentID,
		StudentEmail:  booking.StudentEmail,
		StudentName:   booking.StudentName,
		Pickup:        booking.Pickup,
		Dropoff:       booking.Dropoff,
		RideDate:      booking.RideDate,
		RideTime:      booking.RideTime,
		Fare:          booking.Fare(),
		PaymentMethod: booking.PaymentMethod,
		Status:        booking.Status,
		CompletedAt:   booking.CompletedAt,
		CancelledAt:   booking.CancelledAt,
		DriverID:      booking.DriverID,
		DriverName:    booking.DriverName,
		VehicleType:   string(booking.VehicleType),
		VehicleNumber: booking.VehicleNumber,
	}

	if err := s.historyRepo.Create(ctx, history); err != nil {
		if apperrors.Is(err, apperrors.ErrHistoryExists) {
			return nil
		}
		return err
	}

	s.logger.WithBookingID(booking.ID).WithStudentID(booking.StudentID).
		WithField("status", booking.Status).Info("ride history recorded")

	invalidateStats(ctx, s.cache, booking.StudentID)
	return nil
}
