package validators

import (
	"fmt"
	"strconv"
	"time"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/internal/utils"
	"campusride/pkg/apperrors"
)

// RateRequest is the body of POST /ride-history/:id/rate.
type RateRequest struct {
	Rating   *int   `json:"rating" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
}

func ValidateRate(req *RateRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return apperrors.Validation(fmt.Sprintf("Rating must be between %d and %d", utils.MinRating, utils.MaxRating))
	}
	return nil
}

// HistoryQuery carries the raw query parameters of the history listing
// endpoint.
type HistoryQuery struct {
	Status    string
	StartDate string
	EndDate   string
	Limit     string
}

// Parse converts the raw query into a repository filter and display limit.
// Date bounds accept RFC3339 or plain YYYY-MM-DD; a zero limit means
// unlimited. Unparseable values are a validation error rather than being
// silently dropped.
func (q *HistoryQuery) Parse() (interfaces.RideHistoryFilter, int, error) {
	filter := interfaces.RideHistoryFilter{
		Status: models.BookingStatus(q.Status),
	}

	if q.StartDate != "" {
		t, err := parseDate(q.StartDate)
		if err != nil {
			return filter, 0, apperrors.Validation("Invalid startDate")
		}
		filter.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := parseDate(q.EndDate)
		if err != nil {
			return filter, 0, apperrors.Validation("Invalid endDate")
		}
		filter.EndDate = &t
	}

	limit := 0
	if q.Limit != "" {
		n, err := strconv.Atoi(q.Limit)
		if err != nil || n < 0 {
			return filter, 0, apperrors.Validation("Invalid limit")
		}
		limit = n
	}

	return filter, limit, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
