package services

import "errors"

var (
	ErrUnitNotFound        = errors.New("unit not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUnitUnavailable     = errors.New("unit is not available for the requested interval")
	ErrInvalidInterval     = errors.New("invalid reservation interval")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrPersistence         = errors.New("storage error")
)
