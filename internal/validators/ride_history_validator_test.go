package validators

import (
	"testing"
	"time"

	"campusride/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRate(t *testing.T) {
	assert.NoError(t, ValidateRate(&RateRequest{Rating: intPtr(1)}))
	assert.NoError(t, ValidateRate(&RateRequest{Rating: intPtr(5)}))

	for _, rating := range []int{0, 6, -3} {
		err := ValidateRate(&RateRequest{Rating: intPtr(rating)})
		require.Error(t, err)
		assert.Equal(t, "Rating must be between 1 and 5", err.Error())
	}

	assert.Error(t, ValidateRate(&RateRequest{}))
}

func TestHistoryQueryParse(t *testing.T) {
	filter, limit, err := (&HistoryQuery{}).Parse()
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatus(""), filter.Status)
	assert.Nil(t, filter.StartDate)
	assert.Nil(t, filter.EndDate)
	assert.Equal(t, 0, limit)

	filter, limit, err = (&HistoryQuery{
		Status:    "completed",
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31T23:59:59Z",
		Limit:     "10",
	}).Parse()
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, filter.Status)
	require.NotNil(t, filter.StartDate)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
	require.NotNil(t, filter.EndDate)
	assert.Equal(t, 10, limit)
}

func TestHistoryQueryParseRejectsGarbage(t *testing.T) {
	_, _, err := (&HistoryQuery{StartDate: "yesterday"}).Parse()
	assert.Error(t, err)

	_, _, err = (&HistoryQuery{EndDate: "31/08/2026"}).Parse()
	assert.Error(t, err)

	_, _, err = (&HistoryQuery{Limit: "many"}).Parse()
	assert.Error(t, err)

	_, _, err = (&HistoryQuery{Limit: "-1"}).Parse()
	assert.Error(t, err)
}
