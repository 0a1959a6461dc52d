package services

import (
	"time"
	"venise/src/models"
	"venise/src/types"
)

// UnitInfo is the read-only view of a bookable unit the reservation core
// needs: its rate and owning hotel. Rate is per night for rooms and
// apartments, flat for event rooms.
type UnitInfo struct {
	ID      uint
	HotelID uint
	Rate    float64
}

type UnitStore interface {
	// GetUnit returns ErrUnitNotFound when the unit does not exist.
	GetUnit(kind types.ReservationKind, id uint) (*UnitInfo, error)
}

type ReservationStore interface {
	// Get returns ErrReservationNotFound when absent.
	Get(kind types.ReservationKind, id uint) (*models.Reservation, error)
	// ListActive returns the non-cancelled reservations for a unit. When
	// onDate is set only reservations on that calendar date are returned
	// (event rooms book single days). excludeID, when non-zero, skips that
	// reservation.
	ListActive(kind types.ReservationKind, unitID uint, onDate *time.Time, excludeID uint) ([]models.Reservation, error)
	Save(r *models.Reservation) error
	Delete(kind types.ReservationKind, id uint) error
	Search(kind types.ReservationKind, filters *types.ReservationQueryFilters, userID *uint, adminHotelIDs []uint) ([]models.Reservation, error)
	// InTx runs fn against a transactional view of the store. The
	// availability check and the subsequent write share one transaction so
	// two concurrent creates cannot both pass the check.
	InTx(fn func(ReservationStore) error) error
}

// Notifier is the outbound email sink. Implementations must never block the
// calling operation and must swallow (log) their own failures.
type Notifier interface {
	ReservationCreated(r *models.Reservation)
	ReservationConfirmed(r *models.Reservation)
	ReservationCancelled(r *models.Reservation)
	ReservationDeleted(r *models.Reservation)
}

type NopNotifier struct{}

func (NopNotifier) ReservationCreated(*models.Reservation)   {}
func (NopNotifier) ReservationConfirmed(*models.Reservation) {}
func (NopNotifier) ReservationCancelled(*models.Reservation) {}
func (NopNotifier) ReservationDeleted(*models.Reservation)   {}
