package personnel

import (
	"testing"
	"time"
	"venise/src/types"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 4, 7, hour, minute, 0, 0, time.UTC)
}

func TestArrivalOnTime(t *testing.T) {
	status, deduction := EvaluateArrival(types.SHIFT_DAY, at(7, 55))
	assert.Equal(t, types.ATTENDANCE_PRESENT, status)
	assert.Equal(t, 0.0, deduction)
}

func TestArrivalWithinTolerance(t *testing.T) {
	status, deduction := EvaluateArrival(types.SHIFT_DAY, at(8, 15))
	assert.Equal(t, types.ATTENDANCE_PRESENT, status)
	assert.Equal(t, 0.0, deduction)
}

func TestArrivalLate(t *testing.T) {
	status, deduction := EvaluateArrival(types.SHIFT_DAY, at(8, 16))
	assert.Equal(t, types.ATTENDANCE_LATE, status)
	assert.Equal(t, LateDeduction, deduction)
}

func TestNightArrival(t *testing.T) {
	status, _ := EvaluateArrival(types.SHIFT_NIGHT, at(17, 10))
	assert.Equal(t, types.ATTENDANCE_PRESENT, status)

	status, deduction := EvaluateArrival(types.SHIFT_NIGHT, at(17, 30))
	assert.Equal(t, types.ATTENDANCE_LATE, status)
	assert.Equal(t, LateDeduction, deduction)
}

func TestDepartureOnTime(t *testing.T) {
	status, deduction := EvaluateDeparture(types.SHIFT_DAY, types.ATTENDANCE_PRESENT, 0, at(17, 5))
	assert.Equal(t, types.ATTENDANCE_PRESENT, status)
	assert.Equal(t, 0.0, deduction)
}

func TestDepartureWithinTolerance(t *testing.T) {
	status, deduction := EvaluateDeparture(types.SHIFT_DAY, types.ATTENDANCE_PRESENT, 0, at(16, 50))
	assert.Equal(t, types.ATTENDANCE_PRESENT, status)
	assert.Equal(t, 0.0, deduction)
}

func TestDepartureEarly(t *testing.T) {
	status, deduction := EvaluateDeparture(types.SHIFT_DAY, types.ATTENDANCE_PRESENT, 0, at(16, 30))
	assert.Equal(t, types.ATTENDANCE_LEFT_EARLY, status)
	assert.Equal(t, LateDeduction, deduction)
}

func TestDepartureEarlyAfterLateArrival(t *testing.T) {
	status, deduction := EvaluateDeparture(types.SHIFT_DAY, types.ATTENDANCE_LATE, LateDeduction, at(16, 0))
	assert.Equal(t, types.ATTENDANCE_LATE, status)
	assert.Equal(t, 2*LateDeduction, deduction)
}

func TestNightDepartureMorningIsFullShift(t *testing.T) {
	status, deduction := EvaluateDeparture(types.SHIFT_NIGHT, types.ATTENDANCE_PRESENT, 0, at(8, 5))
	assert.Equal(t, types.ATTENDANCE_PRESENT, status)
	assert.Equal(t, 0.0, deduction)
}

func TestNightDepartureSmallHoursIsEarly(t *testing.T) {
	status, deduction := EvaluateDeparture(types.SHIFT_NIGHT, types.ATTENDANCE_PRESENT, 0, at(3, 0))
	assert.Equal(t, types.ATTENDANCE_LEFT_EARLY, status)
	assert.Equal(t, LateDeduction, deduction)
}

func TestNightDepartureLateEveningUnchanged(t *testing.T) {
	// Badging out at 23:00 is before the morning boundary of the next day,
	// but the hour is past 08:00 so it does not count as early.
	status, deduction := EvaluateDeparture(types.SHIFT_NIGHT, types.ATTENDANCE_PRESENT, 0, at(23, 0))
	assert.Equal(t, types.ATTENDANCE_PRESENT, status)
	assert.Equal(t, 0.0, deduction)
}
