package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRangeNights(t *testing.T) {
	dr, err := NewDateRange("2025-03-01", "2025-03-04")
	require.NoError(t, err)
	assert.Equal(t, 3, dr.Nights())
	assert.NoError(t, dr.Validate())
}

func TestDateRangeZeroNightsRejected(t *testing.T) {
	dr, err := NewDateRange("2025-03-01", "2025-03-01")
	require.NoError(t, err)
	assert.ErrorIs(t, dr.Validate(), ErrInvalidInterval)

	dr, err = NewDateRange("2025-03-04", "2025-03-01")
	require.NoError(t, err)
	assert.ErrorIs(t, dr.Validate(), ErrInvalidInterval)
}

func TestDateRangeBadFormat(t *testing.T) {
	_, err := NewDateRange("01/03/2025", "2025-03-04")
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestDateRangeBoundaryTouchIsNotOverlap(t *testing.T) {
	a, _ := NewDateRange("2025-03-01", "2025-03-05")
	b, _ := NewDateRange("2025-03-05", "2025-03-09")
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestDateRangeOverlap(t *testing.T) {
	a, _ := NewDateRange("2025-03-01", "2025-03-05")
	b, _ := NewDateRange("2025-03-04", "2025-03-06")
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))

	inside, _ := NewDateRange("2025-03-02", "2025-03-03")
	assert.True(t, a.Overlaps(inside))
}

func TestTimeRangeBounds(t *testing.T) {
	tr, err := NewTimeRange("2025-06-10", "14:00", "18:00")
	require.NoError(t, err)
	start, end, err := tr.Bounds()
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, end.Sub(start))
	assert.NoError(t, tr.Validate())
}

func TestTimeRangeMidnightWrap(t *testing.T) {
	tr, err := NewTimeRange("2025-06-10", "22:00", "02:00")
	require.NoError(t, err)
	start, end, err := tr.Bounds()
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, end.Sub(start))
	assert.True(t, end.Day() != start.Day())
	assert.NoError(t, tr.Validate())
}

func TestTimeRangeEqualTimesRejected(t *testing.T) {
	tr := TimeRange{EventDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), Start: "14:00", End: "14:00"}
	assert.ErrorIs(t, tr.Validate(), ErrInvalidInterval)
}

func TestTimeRangeBadClock(t *testing.T) {
	_, err := NewTimeRange("2025-06-10", "2pm", "18:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestTimeRangeOverlap(t *testing.T) {
	a, _ := NewTimeRange("2025-06-10", "18:00", "20:00")
	touching, _ := NewTimeRange("2025-06-10", "20:00", "23:00")
	overlapping, _ := NewTimeRange("2025-06-10", "19:00", "21:00")

	assert.False(t, a.Overlaps(touching))
	assert.False(t, touching.Overlaps(a))
	assert.True(t, a.Overlaps(overlapping))
}

func TestTimeRangeOverlapAcrossMidnight(t *testing.T) {
	late, _ := NewTimeRange("2025-06-10", "22:00", "03:00")
	sameNight, _ := NewTimeRange("2025-06-10", "23:00", "01:00")
	assert.True(t, late.Overlaps(sameNight))
}
