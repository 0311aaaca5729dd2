package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusride/internal/models"
	"campusride/internal/validators"
	"campusride/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newHistoryService() (*RideHistoryService, *fakeBookingRepo, *fakeHistoryRepo, *fakeCache) {
	bookingRepo := &fakeBookingRepo{}
	historyRepo := &fakeHistoryRepo{}
	statsCache := newFakeCache()
	svc := NewRideHistoryService(historyRepo, bookingRepo, statsCache, 5*time.Minute, testLogger())
	return svc, bookingRepo, historyRepo, statsCache
}

// seedRide archives one record, optionally backed by a booking in the store.
func seedRide(t *testing.T, bookingRepo *fakeBookingRepo, historyRepo *fakeHistoryRepo, status models.BookingStatus, fare *float64, withBooking bool) *models.RideHistory {
	t.Helper()

	bookingID := primitive.NewObjectID()
	if withBooking {
		booking := &models.Booking{
			StudentID:    "stu-100",
			StudentEmail: "jdoe@pfw.edu",
			Pickup:       "Walb Union",
			Dropoff:      "Kettler Hall",
			RideDate:     "2026-09-01",
			RideTime:     "14:30",
			VehicleType:  models.VehicleTypeEconomy,
			Status:       status,
		}
		require.NoError(t, bookingRepo.Create(context.Background(), booking))
		bookingID = booking.ID
	}

	h := &models.RideHistory{
		BookingID:    bookingID,
		StudentID:    "stu-100",
		StudentEmail: "jdoe@pfw.edu",
		Pickup:       "Walb Union",
		Dropoff:      "Kettler Hall",
		RideDate:     "2026-09-01",
		Status:       status,
		Fare:         fare,
	}
	require.NoError(t, historyRepo.Create(context.Background(), h))
	return h
}

func TestHistoryListStatsCoverFullSetBeyondLimit(t *testing.T) {
	svc, bookingRepo, historyRepo, _ := newHistoryService()

	seedRide(t, bookingRepo, historyRepo, models.BookingStatusCompleted, floatPtr(12.50), false)
	seedRide(t, bookingRepo, historyRepo, models.BookingStatusCompleted, floatPtr(25.00), false)
	seedRide(t, bookingRepo, historyRepo, models.BookingStatusCancelled, nil, false)

	entries, stats, err := svc.ListForStudent(context.Background(), "stu-100", &validators.HistoryQuery{Limit: "1"})
	require.NoError(t, err)

	// One entry returned, stats computed over all three.
	assert.Len(t, entries, 1)
	assert.Equal(t, 3, stats.TotalRides)
	assert.Equal(t, 2, stats.CompletedRides)
	assert.Equal(t, 1, stats.CancelledRides)
	assert.Equal(t, "37.50", stats.TotalSpent)
}

func TestHistoryListStatusFilterScopesStats(t *testing.T) {
	svc, bookingRepo, historyRepo, _ := newHistoryService()

	seedRide(t, bookingRepo, historyRepo, models.BookingStatusCompleted, floatPtr(10.00), false)
	seedRide(t, bookingRepo, historyRepo, models.BookingStatusCancelled, nil, false)

	entries, stats, err := svc.ListForStudent(context.Background(), "stu-100", &validators.HistoryQuery{Status: "cancelled"})
	require.NoError(t, err)

	assert.Len(t, entries, 1)
	assert.Equal(t, 1, stats.TotalRides)
	assert.Equal(t, 0, stats.CompletedRides)
	assert.Equal(t, "0.00", stats.TotalSpent)
}

func TestHistoryListEnrichesBookingSummary(t *testing.T) {
	svc, bookingRepo, historyRepo, _ := newHistoryService()

	seedRide(t, bookingRepo, historyRepo, models.BookingStatusCompleted, nil, true)
	orphan := seedRide(t, bookingRepo, historyRepo, models.BookingStatusCompleted, nil, false)

	entries, _, err := svc.ListForStudent(context.Background(), "stu-100", &validators.HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first: the orphan was inserted second.
	assert.Equal(t, orphan.ID, entries[0].ID)
	assert.Nil(t, entries[0].Booking)

	require.NotNil(t, entries[1].Booking)
	assert.Equal(t, entries[1].BookingID, entries[1].Booking.ID)
	assert.Equal(t, "Walb Union", entries[1].Booking.Pickup)
}

func TestHistoryListInvalidQuery(t *testing.T) {
	svc, _, _, _ := newHistoryService()

	_, _, err := svc.ListForStudent(context.Background(), "stu-100", &validators.HistoryQuery{Limit: "lots"})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.Get(err).Status)

	_, _, err = svc.ListForStudent(context.Background(), "stu-100", &validators.HistoryQuery{StartDate: "not-a-date"})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.Get(err).Status)
}

func TestHistoryGetNotFound(t *testing.T) {
	svc, _, _, _ := newHistoryService()

	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.Get(err).Status)
}

func TestHistoryRate(t *testing.T) {
	svc, bookingRepo, historyRepo, statsCache := newHistoryService()

	ride := seedRide(t, bookingRepo, historyRepo, models.BookingStatusCompleted, nil, false)

	rated, err := svc.Rate(context.Background(), ride.ID, &validators.RateRequest{
		Rating:   intPtr(4),
		Feedback: "smooth ride",
	})
	require.NoError(t, err)

	require.NotNil(t, rated.Rating)
	assert.Equal(t, 4, *rated.Rating)
	assert.Equal(t, "smooth ride", rated.Feedback)
	assert.NotNil(t, rated.RatedAt)
	assert.Contains(t, statsCache.deletes, "ride_stats:stu-100")

	// Ratings may be revised.
	rerated, err := svc.Rate(context.Background(), ride.ID, &validators.RateRequest{Rating: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, *rerated.Rating)
}

func TestHistoryRateOutOfRange(t *testing.T) {
	svc, bookingRepo, historyRepo, _ := newHistoryService()

	ride := seedRide(t, bookingRepo, historyRepo, models.BookingStatusCompleted, nil, false)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Rate(context.Background(), ride.ID, &validators.RateRequest{Rating: intPtr(rating)})
		require.Error(t, err)
		assert.Equal(t, "Rating must be between 1 and 5", apperrors.Get(err).Message)
	}

	_, err := svc.Rate(context.Background(), ride.ID, &validators.RateRequest{})
	require.Error(t, err)
}

func TestHistoryStatsServedFromCache(t *testing.T) {
	svc, bookingRepo, historyRepo, statsCache := newHistoryService()

	seedRide(t, bookingRepo, historyRepo, models.BookingStatusCompleted, floatPtr(8.00), false)

	first, err := svc.StatsForStudent(context.Background(), "stu-100")
	require.NoError(t, err)
	assert.Equal(t, "8.00", first.TotalSpent)
	assert.Contains(t, statsCache.sets, "ride_stats:stu-100")

	// A second ride lands, but the cache is still fresh.
	seedRide(t, bookingRepo, historyRepo, models.BookingStatusCompleted, floatPtr(50.00), false)

	cached, err := svc.StatsForStudent(context.Background(), "stu-100")
	require.NoError(t, err)
	assert.Equal(t, "8.00", cached.TotalSpent)

	// Invalidation brings the next read up to date.
	invalidateStats(context.Background(), statsCache, "stu-100")

	fresh, err := svc.StatsForStudent(context.Background(), "stu-100")
	require.NoError(t, err)
	assert.Equal(t, "58.00", fresh.TotalSpent)
}

// failingCache errors on every operation, like an unreachable Redis.
type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string, dest interface{}) error {
	return errors.New("connection refused")
}

func (failingCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return errors.New("connection refused")
}

func (failingCache) Delete(ctx context.Context, key string) error {
	return errors.New("connection refused")
}

func TestHistoryStatsSurvivesCacheFailure(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	historyRepo := &fakeHistoryRepo{}
	svc := NewRideHistoryService(historyRepo, bookingRepo, failingCache{}, time.Minute, testLogger())

	seedRide(t, bookingRepo, historyRepo, models.BookingStatusCompleted, floatPtr(8.00), false)

	// A cache error that is not a miss falls through to the store.
	stats, err := svc.StatsForStudent(context.Background(), "stu-100")
	require.NoError(t, err)
	assert.Equal(t, "8.00", stats.TotalSpent)
}

func TestHistoryStatsWorksWithoutCache(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	historyRepo := &fakeHistoryRepo{}
	svc := NewRideHistoryService(historyRepo, bookingRepo, nil, 0, testLogger())

	seedRide(t, bookingRepo, historyRepo, models.BookingStatusCompleted, floatPtr(8.00), false)

	stats, err := svc.StatsForStudent(context.Background(), "stu-100")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRides)
}
