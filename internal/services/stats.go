package services

import (
	"context"
	"fmt"

	"campusride/internal/models"
	"campusride/pkg/cache"
)

// BasicStats summarizes a set of history records. Pure: callers decide what
// set to pass, and any display limit must be applied after this runs.
func BasicStats(records []*models.RideHistory) *models.RideStats {
	stats := &models.RideStats{TotalRides: len(records)}

	totalSpent := 0.0
	ratingSum := 0
	ratedCount := 0

	for _, h := range records {
		switch h.Status {
		case models.BookingStatusCompleted:
			stats.CompletedRides++
			if h.Fare != nil {
				totalSpent += *h.Fare
			}
		case models.BookingStatusCancelled:
			stats.CancelledRides++
		}

		if h.Rating != nil {
			ratingSum += *h.Rating
			ratedCount++
		}
	}

	stats.TotalSpent = fmt.Sprintf("%.2f", totalSpent)
	if ratedCount > 0 {
		avg := fmt.Sprintf("%.1f", float64(ratingSum)/float64(ratedCount))
		stats.AverageRating = &avg
	}

	return stats
}

// DetailedStats extends BasicStats with distance, duration, favorite
// locations and campus classification for the dedicated stats endpoint.
func DetailedStats(records []*models.RideHistory) *models.RideStatsDetailed {
	stats := &models.RideStatsDetailed{RideStats: *BasicStats(records)}

	totalDistance := 0.0
	for _, h := range records {
		if h.Distance != nil {
			totalDistance += *h.Distance
		}
		if h.Duration != nil {
			stats.TotalDuration += *h.Duration
		}
		switch h.Destination {
		case models.DestinationOnCampus:
			stats.OnCampusRides++
		case models.DestinationOffCampus:
			stats.OffCampusRides++
		}
	}
	stats.TotalDistance = fmt.Sprintf("%.1f", totalDistance)

	// Null, not empty string, when the student has no recorded locations.
	if v := mostFrequent(records, func(h *models.RideHistory) string { return h.Pickup }); v != "" {
		stats.FavoritePickup = &v
	}
	if v := mostFrequent(records, func(h *models.RideHistory) string { return h.Dropoff }); v != "" {
		stats.FavoriteDropoff = &v
	}

	return stats
}

// mostFrequent returns the mode of the non-empty values; ties go to the value
// encountered first.
func mostFrequent(records []*models.RideHistory, field func(*models.RideHistory) string) string {
	frequency := make(map[string]int)
	maxFreq := 0
	best := ""

	for _, h := range records {
		v := field(h)
		if v == "" {
			continue
		}
		frequency[v]++
		if frequency[v] > maxFreq {
			maxFreq = frequency[v]
			best = v
		}
	}

	return best
}

func statsCacheKey(studentID string) string {
	return "ride_stats:" + studentID
}

// invalidateStats drops a student's cached stats after any history write. The
// cache is advisory, so failures only get logged by callers that care.
func invalidateStats(ctx context.Context, c cache.Cache, studentID string) {
	if c == nil {
		return
	}
	_ = c.Delete(ctx, statsCacheKey(studentID))
}
