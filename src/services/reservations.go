package services

import (
	"time"
	"venise/src/models"
	"venise/src/types"
)

// Service orchestrates the reservation lifecycle: availability, pricing and
// status changes for the three bookable kinds. Authorization is the HTTP
// layer's job; the requester account only arrives here as an optional owner
// id to stamp onto new reservations.
type Service struct {
	units         UnitStore
	store         ReservationStore
	notify        Notifier
	initialStatus types.ReservationStatus
}

func NewService(units UnitStore, store ReservationStore, notify Notifier, initialStatus types.ReservationStatus) *Service {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Service{units: units, store: store, notify: notify, initialStatus: initialStatus}
}

func stayRange(r *models.Reservation) DateRange {
	return DateRange{CheckIn: *r.CheckInDate, CheckOut: *r.CheckOutDate}
}

func eventRange(r *models.Reservation) TimeRange {
	return TimeRange{EventDate: *r.EventDate, Start: *r.StartTime, End: *r.EndTime}
}

func (s *Service) stayAvailable(store ReservationStore, kind types.ReservationKind, unitID uint, requested DateRange, excludeID uint) (bool, error) {
	existing, err := store.ListActive(kind, unitID, nil, excludeID)
	if err != nil {
		return false, err
	}
	for i := range existing {
		if requested.Overlaps(stayRange(&existing[i])) {
			return false, nil
		}
	}
	return true, nil
}

func (s *Service) eventAvailable(store ReservationStore, unitID uint, requested TimeRange, excludeID uint) (bool, error) {
	existing, err := store.ListActive(types.KIND_EVENT_ROOM, unitID, &requested.EventDate, excludeID)
	if err != nil {
		return false, err
	}
	for i := range existing {
		if requested.Overlaps(eventRange(&existing[i])) {
			return false, nil
		}
	}
	return true, nil
}

// CreateStay books a room or apartment. The availability check and the
// insert share one transaction.
func (s *Service) CreateStay(kind types.ReservationKind, body *types.CreateStayReservationRequestBody, userID *uint) (*models.Reservation, error) {
	unit, err := s.units.GetUnit(kind, body.UnitID)
	if err != nil {
		return nil, err
	}
	dr, err := NewDateRange(body.CheckInDate, body.CheckOutDate)
	if err != nil {
		return nil, err
	}
	price, err := PriceForStay(unit.Rate, dr)
	if err != nil {
		return nil, err
	}
	res := &models.Reservation{
		Kind:         kind,
		UnitID:       unit.ID,
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        body.Email,
		CheckInDate:  &dr.CheckIn,
		CheckOutDate: &dr.CheckOut,
		PartySize:    body.PartySize,
		Status:       s.initialStatus,
		TotalPrice:   price,
		UserID:       userID,
	}
	if body.PaymentMethod != "" {
		res.PaymentMethod = &body.PaymentMethod
	}
	if body.Notes != "" {
		res.Notes = &body.Notes
	}
	err = s.store.InTx(func(tx ReservationStore) error {
		ok, err := s.stayAvailable(tx, kind, unit.ID, dr, 0)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnitUnavailable
		}
		return tx.Save(res)
	})
	if err != nil {
		return nil, err
	}
	s.notify.ReservationCreated(res)
	return res, nil
}

// CreateEvent books an event room for a single date and time slot.
func (s *Service) CreateEvent(body *types.CreateEventReservationRequestBody, userID *uint) (*models.Reservation, error) {
	unit, err := s.units.GetUnit(types.KIND_EVENT_ROOM, body.UnitID)
	if err != nil {
		return nil, err
	}
	tr, err := NewTimeRange(body.EventDate, body.StartTime, body.EndTime)
	if err != nil {
		return nil, err
	}
	price, err := PriceForEvent(unit.Rate, tr)
	if err != nil {
		return nil, err
	}
	res := &models.Reservation{
		Kind:       types.KIND_EVENT_ROOM,
		UnitID:     unit.ID,
		FirstName:  body.FirstName,
		LastName:   body.LastName,
		Email:      body.Email,
		EventType:  &body.EventType,
		EventDate:  &tr.EventDate,
		StartTime:  &tr.Start,
		EndTime:    &tr.End,
		PartySize:  body.GuestCount,
		Status:     s.initialStatus,
		TotalPrice: price,
		UserID:     userID,
	}
	if body.PaymentMethod != "" {
		res.PaymentMethod = &body.PaymentMethod
	}
	if body.Notes != "" {
		res.Notes = &body.Notes
	}
	err = s.store.InTx(func(tx ReservationStore) error {
		ok, err := s.eventAvailable(tx, unit.ID, tr, 0)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnitUnavailable
		}
		return tx.Save(res)
	})
	if err != nil {
		return nil, err
	}
	s.notify.ReservationCreated(res)
	return res, nil
}

// Update applies partial changes. The availability check reruns, excluding
// the reservation itself, only when the interval actually moved; a pure
// guest-info edit never consults availability. The stored row is only
// written once everything has validated, so a rejected update leaves it
// untouched.
func (s *Service) Update(kind types.ReservationKind, id uint, changes *types.UpdateReservationRequestBody) (*models.Reservation, error) {
	res, err := s.store.Get(kind, id)
	if err != nil {
		return nil, err
	}

	err = s.store.InTx(func(tx ReservationStore) error {
		if kind == types.KIND_EVENT_ROOM {
			tr := eventRange(res)
			if changes.EventDate != nil {
				d, err := ParseDate(*changes.EventDate)
				if err != nil {
					return err
				}
				tr.EventDate = d
			}
			if changes.StartTime != nil {
				tr.Start = *changes.StartTime
			}
			if changes.EndTime != nil {
				tr.End = *changes.EndTime
			}
			if !tr.EventDate.Equal(*res.EventDate) || tr.Start != *res.StartTime || tr.End != *res.EndTime {
				if err := tr.Validate(); err != nil {
					return err
				}
				ok, err := s.eventAvailable(tx, res.UnitID, tr, res.ID)
				if err != nil {
					return err
				}
				if !ok {
					return ErrUnitUnavailable
				}
				unit, err := s.units.GetUnit(kind, res.UnitID)
				if err != nil {
					return err
				}
				price, err := PriceForEvent(unit.Rate, tr)
				if err != nil {
					return err
				}
				res.EventDate = &tr.EventDate
				res.StartTime = &tr.Start
				res.EndTime = &tr.End
				res.TotalPrice = price
			}
		} else {
			dr := stayRange(res)
			if changes.CheckInDate != nil {
				d, err := ParseDate(*changes.CheckInDate)
				if err != nil {
					return err
				}
				dr.CheckIn = d
			}
			if changes.CheckOutDate != nil {
				d, err := ParseDate(*changes.CheckOutDate)
				if err != nil {
					return err
				}
				dr.CheckOut = d
			}
			if !dr.CheckIn.Equal(*res.CheckInDate) || !dr.CheckOut.Equal(*res.CheckOutDate) {
				if err := dr.Validate(); err != nil {
					return err
				}
				ok, err := s.stayAvailable(tx, kind, res.UnitID, dr, res.ID)
				if err != nil {
					return err
				}
				if !ok {
					return ErrUnitUnavailable
				}
				unit, err := s.units.GetUnit(kind, res.UnitID)
				if err != nil {
					return err
				}
				price, err := PriceForStay(unit.Rate, dr)
				if err != nil {
					return err
				}
				res.CheckInDate = &dr.CheckIn
				res.CheckOutDate = &dr.CheckOut
				res.TotalPrice = price
			}
		}

		if changes.FirstName != nil {
			res.FirstName = *changes.FirstName
		}
		if changes.LastName != nil {
			res.LastName = *changes.LastName
		}
		if changes.Email != nil {
			res.Email = *changes.Email
		}
		if changes.EventType != nil {
			res.EventType = changes.EventType
		}
		if changes.PartySize != nil {
			res.PartySize = *changes.PartySize
		}
		if changes.PaymentMethod != nil {
			res.PaymentMethod = changes.PaymentMethod
		}
		if changes.Notes != nil {
			res.Notes = changes.Notes
		}
		if changes.Status != nil {
			if !types.ValidReservationStatus(*changes.Status) {
				return ErrInvalidStatus
			}
			res.Status = types.ReservationStatus(*changes.Status)
		}
		return tx.Save(res)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Confirm moves a reservation to confirmed from any status.
func (s *Service) Confirm(kind types.ReservationKind, id uint) (*models.Reservation, error) {
	res, err := s.store.Get(kind, id)
	if err != nil {
		return nil, err
	}
	next, err := applyTransition(res.Status, ActionConfirm)
	if err != nil {
		return nil, err
	}
	res.Status = next
	if err := s.store.Save(res); err != nil {
		return nil, err
	}
	s.notify.ReservationConfirmed(res)
	return res, nil
}

// Cancel is soft: the row stays, its interval no longer blocks availability.
func (s *Service) Cancel(kind types.ReservationKind, id uint) error {
	res, err := s.store.Get(kind, id)
	if err != nil {
		return err
	}
	next, err := applyTransition(res.Status, ActionCancel)
	if err != nil {
		return err
	}
	res.Status = next
	if err := s.store.Save(res); err != nil {
		return err
	}
	s.notify.ReservationCancelled(res)
	return nil
}

// Delete removes the row entirely, bypassing the status machine.
func (s *Service) Delete(kind types.ReservationKind, id uint) error {
	res, err := s.store.Get(kind, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(kind, id); err != nil {
		return err
	}
	s.notify.ReservationDeleted(res)
	return nil
}

func (s *Service) Get(kind types.ReservationKind, id uint) (*models.Reservation, error) {
	return s.store.Get(kind, id)
}

func (s *Service) Search(kind types.ReservationKind, filters *types.ReservationQueryFilters, userID *uint, adminHotelIDs []uint) ([]models.Reservation, error) {
	return s.store.Search(kind, filters, userID, adminHotelIDs)
}

// CheckAndPrice answers "is this slot free and what would it cost" without
// side effects. ExcludeID lets a caller probe a move of an existing
// reservation.
func (s *Service) CheckAndPrice(kind types.ReservationKind, body *types.CheckAvailabilityRequestBody) (bool, float64, error) {
	unit, err := s.units.GetUnit(kind, body.UnitID)
	if err != nil {
		return false, 0, err
	}
	if kind == types.KIND_EVENT_ROOM {
		if body.EventDate == nil || body.StartTime == nil || body.EndTime == nil {
			return false, 0, ErrInvalidInterval
		}
		tr, err := NewTimeRange(*body.EventDate, *body.StartTime, *body.EndTime)
		if err != nil {
			return false, 0, err
		}
		price, err := PriceForEvent(unit.Rate, tr)
		if err != nil {
			return false, 0, err
		}
		ok, err := s.eventAvailable(s.store, unit.ID, tr, body.ExcludeID)
		if err != nil {
			return false, 0, err
		}
		return ok, price, nil
	}
	if body.CheckInDate == nil || body.CheckOutDate == nil {
		return false, 0, ErrInvalidInterval
	}
	dr, err := NewDateRange(*body.CheckInDate, *body.CheckOutDate)
	if err != nil {
		return false, 0, err
	}
	price, err := PriceForStay(unit.Rate, dr)
	if err != nil {
		return false, 0, err
	}
	ok, err := s.stayAvailable(s.store, kind, unit.ID, dr, body.ExcludeID)
	if err != nil {
		return false, 0, err
	}
	return ok, price, nil
}

// UpcomingArrivals lists confirmed stays checking in within the window,
// used by the reminder job.
func UpcomingArrivals(store ReservationStore, kind types.ReservationKind, until time.Time) ([]models.Reservation, error) {
	filters := &types.ReservationQueryFilters{
		Status: string(types.RESERVATION_CONFIRMED),
	}
	all, err := store.Search(kind, filters, nil, nil)
	if err != nil {
		return nil, err
	}
	var out []models.Reservation
	now := time.Now().UTC().Truncate(24 * time.Hour)
	for i := range all {
		r := all[i]
		var day *time.Time
		switch kind {
		case types.KIND_EVENT_ROOM:
			day = r.EventDate
		default:
			day = r.CheckInDate
		}
		if day == nil {
			continue
		}
		if !day.Before(now) && !day.After(until) {
			out = append(out, r)
		}
	}
	return out, nil
}
