package services

import "math"

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PriceForStay prorates the nightly rate over the stay.
func PriceForStay(ratePerNight float64, r DateRange) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return round2(ratePerNight * float64(r.Nights())), nil
}

// PriceForEvent charges the flat rental price. The duration only matters for
// availability, but a degenerate slot is still rejected here.
func PriceForEvent(rentalPrice float64, t TimeRange) (float64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	return round2(rentalPrice), nil
}
