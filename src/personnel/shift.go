package personnel

import (
	"time"
	"venise/src/types"
)

// Shift boundaries are hotel wall-clock times. The night shift runs from
// 17:00 to 08:00 the next morning.
const (
	DayShiftStartHour   = 8
	DayShiftEndHour     = 17
	NightShiftStartHour = 17
	NightShiftEndHour   = 8

	LateTolerance = 15 * time.Minute

	LateDeduction    = 1000.0
	AbsenceDeduction = 5000.0
)

func shiftStart(shift types.ShiftType, day time.Time) time.Time {
	hour := DayShiftStartHour
	if shift == types.SHIFT_NIGHT {
		hour = NightShiftStartHour
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

func shiftEnd(shift types.ShiftType, day time.Time) time.Time {
	hour := DayShiftEndHour
	if shift == types.SHIFT_NIGHT {
		hour = NightShiftEndHour
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

// EvaluateArrival grades a badge-in. Arrivals more than the tolerance past
// shift start are late and cost the flat late deduction.
func EvaluateArrival(shift types.ShiftType, now time.Time) (types.AttendanceStatus, float64) {
	start := shiftStart(shift, now)
	if now.Sub(start) > LateTolerance {
		return types.ATTENDANCE_LATE, LateDeduction
	}
	return types.ATTENDANCE_PRESENT, 0
}

// EvaluateDeparture grades a badge-out against the current attendance row.
// Leaving more than the tolerance before shift end costs another late
// deduction; an on-time departure changes nothing. For the night shift the
// end boundary is the following morning, so only small hours count as early.
func EvaluateDeparture(shift types.ShiftType, status types.AttendanceStatus, deduction float64, now time.Time) (types.AttendanceStatus, float64) {
	end := shiftEnd(shift, now)
	early := end.Sub(now)
	if shift == types.SHIFT_NIGHT {
		// Past the morning boundary means a full shift was worked.
		if now.Hour() >= NightShiftEndHour {
			return status, deduction
		}
	}
	if early > LateTolerance {
		if status == types.ATTENDANCE_LATE {
			return status, deduction + LateDeduction
		}
		return types.ATTENDANCE_LEFT_EARLY, LateDeduction
	}
	return status, deduction
}
