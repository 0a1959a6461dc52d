package services

import (
	"time"
	"venise/src/config"
)

// DateRange is the half-open [check_in, check_out) stay interval used by
// rooms and apartments. Both bounds are date-only values at midnight UTC.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(config.DATE_PARSE_FORMAT, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidInterval
	}
	return d, nil
}

func NewDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{CheckIn: in, CheckOut: out}, nil
}

func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func (r DateRange) Validate() error {
	if r.Nights() <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

// Overlaps is the open-interval test: a checkout on another booking's
// check-in day is not a conflict.
func (r DateRange) Overlaps(other DateRange) bool {
	return other.CheckOut.After(r.CheckIn) && other.CheckIn.Before(r.CheckOut)
}

// TimeRange is a single-day event slot: a clock-time range on EventDate.
// An end at or before the start crosses midnight and resolves to the next
// day, except an end equal to the start, which is an empty slot.
type TimeRange struct {
	EventDate time.Time
	Start     string
	End       string
}

func NewTimeRange(eventDate, start, end string) (TimeRange, error) {
	d, err := ParseDate(eventDate)
	if err != nil {
		return TimeRange{}, err
	}
	tr := TimeRange{EventDate: d, Start: start, End: end}
	if _, _, err := tr.Bounds(); err != nil {
		return TimeRange{}, err
	}
	return tr, nil
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse(config.TIME_PARSE_FORMAT, s)
	if err != nil {
		return 0, ErrInvalidInterval
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Bounds resolves the clock strings to absolute instants anchored on the
// event date, applying the midnight wrap.
func (t TimeRange) Bounds() (time.Time, time.Time, error) {
	so, err := parseClock(t.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	eo, err := parseClock(t.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := t.EventDate.Add(so)
	end := t.EventDate.Add(eo)
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return start, end, nil
}

func (t TimeRange) Validate() error {
	start, end, err := t.Bounds()
	if err != nil {
		return err
	}
	if !end.After(start) {
		return ErrInvalidInterval
	}
	return nil
}

func (t TimeRange) Overlaps(other TimeRange) bool {
	s1, e1, err := t.Bounds()
	if err != nil {
		return false
	}
	s2, e2, err := other.Bounds()
	if err != nil {
		return false
	}
	return s2.Before(e1) && s1.Before(e2)
}
