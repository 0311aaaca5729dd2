package services

import (
	"context"
	"errors"
	"time"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/internal/validators"
	"campusride/pkg/cache"
	"campusride/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RideHistoryService is the read side over the archival records: listings
// with summary statistics, the detailed stats endpoint, and rating.
type RideHistoryService struct {
	historyRepo interfaces.RideHistoryRepository
	bookingRepo interfaces.BookingRepository
	cache       cache.Cache
	statsTTL    time.Duration
	logger      *logger.Logger
}

func NewRideHistoryService(historyRepo interfaces.RideHistoryRepository, bookingRepo interfaces.BookingRepository, statsCache cache.Cache, statsTTL time.Duration, log *logger.Logger) *RideHistoryService {
	return &RideHistoryService{
		historyRepo: historyRepo,
		bookingRepo: bookingRepo,
		cache:       statsCache,
		statsTTL:    statsTTL,
		logger:      log,
	}
}

// ListForStudent returns matching records newest first plus their statistics
// summary. The stats always reflect the full filtered set: the limit caps
// only the returned list.
func (s *RideHistoryService) ListForStudent(ctx context.Context, studentID string, query *validators.HistoryQuery) ([]*models.RideHistoryEntry, *models.RideStats, error) {
	filter, limit, err := query.Parse()
	if err != nil {
		return nil, nil, err
	}

	records, err := s.historyRepo.ListByStudent(ctx, studentID, filter)
	if err != nil {
		return nil, nil, err
	}

	stats := BasicStats(records)

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	entries, err := s.enrich(ctx, records)
	if err != nil {
		return nil, nil, err
	}

	return entries, stats, nil
}

func (s *RideHistoryService) Get(ctx context.Context, id primitive.ObjectID) (*models.RideHistoryEntry, error) {
	history, err := s.historyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.enrich(ctx, []*models.RideHistory{history})
	if err != nil {
		return nil, err
	}

	return entries[0], nil
}

// Rate records (or overwrites) the rating and feedback on a history record.
func (s *RideHistoryService) Rate(ctx context.Context, id primitive.ObjectID, req *validators.RateRequest) (*models.RideHistory, error) {
	if err := validators.ValidateRate(req); err != nil {
		return nil, err
	}

	history, err := s.historyRepo.Update(ctx, id, map[string]interface{}{
		"rating":   *req.Rating,
		"feedback": req.Feedback,
		"rated_at": time.Now(),
	})
	if err != nil {
		return nil, err
	}

	invalidateStats(ctx, s.cache, history.StudentID)
	return history, nil
}

// StatsForStudent computes the detailed statistics over the student's full
// history, served from the cache when fresh.
func (s *RideHistoryService) StatsForStudent(ctx context.Context, studentID string) (*models.RideStatsDetailed, error) {
	if s.cache != nil {
		var cached models.RideStatsDetailed
		err := s.cache.Get(ctx, statsCacheKey(studentID), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WithError(err).WithStudentID(studentID).Warn("ride stats cache read failed")
		}
	}

	records, err := s.historyRepo.ListByStudent(ctx, studentID, interfaces.RideHistoryFilter{})
	if err != nil {
		return nil, err
	}

	stats := DetailedStats(records)

	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey(studentID), stats, s.statsTTL); err != nil {
			s.logger.WithError(err).WithStudentID(studentID).Warn("failed to cache ride stats")
		}
	}

	return stats, nil
}

// enrich attaches each record's originating booking summary for display.
// Records whose booking has since vanished are returned without one.
func (s *RideHistoryService) enrich(ctx context.Context, records []*models.RideHistory) ([]*models.RideHistoryEntry, error) {
	ids := make([]primitive.ObjectID, 0, len(records))
	for _, h := range records {
		ids = append(ids, h.BookingID)
	}

	bookings, err := s.bookingRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.RideHistoryEntry, 0, len(records))
	for _, h := range records {
		entry := &models.RideHistoryEntry{RideHistory: *h}
		if b, ok := bookings[h.BookingID]; ok {
			entry.Booking = &models.BookingSummary{
				ID:       b.ID,
				Pickup:   b.Pickup,
				Dropoff:  b.Dropoff,
				RideDate: b.RideDate,
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
