package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceForStay(t *testing.T) {
	dr, err := NewDateRange("2025-03-01", "2025-03-04")
	require.NoError(t, err)
	price, err := PriceForStay(10000, dr)
	require.NoError(t, err)
	assert.Equal(t, 30000.0, price)
}

func TestPriceForStayRounding(t *testing.T) {
	dr, _ := NewDateRange("2025-03-01", "2025-03-04")
	price, err := PriceForStay(33.333, dr)
	require.NoError(t, err)
	assert.Equal(t, 100.0, price)
}

func TestPriceForStayRejectsEmptyInterval(t *testing.T) {
	dr, _ := NewDateRange("2025-03-01", "2025-03-01")
	_, err := PriceForStay(10000, dr)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestPriceForEventIsFlat(t *testing.T) {
	short, _ := NewTimeRange("2025-06-10", "18:00", "20:00")
	long, _ := NewTimeRange("2025-06-10", "10:00", "18:00")

	p1, err := PriceForEvent(50000, short)
	require.NoError(t, err)
	p2, err := PriceForEvent(50000, long)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, p1)
	assert.Equal(t, p1, p2)
}

func TestPriceForEventRejectsEmptySlot(t *testing.T) {
	tr := TimeRange{Start: "14:00", End: "14:00"}
	_, err := PriceForEvent(50000, tr)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
