package services

import (
	"errors"
	"fmt"
	"time"
	"venise/src/models"
	"venise/src/types"

	"gorm.io/gorm"
)

type GormUnitStore struct {
	DB *gorm.DB
}

func (s *GormUnitStore) GetUnit(kind types.ReservationKind, id uint) (*UnitInfo, error) {
	switch kind {
	case types.KIND_ROOM:
		var room models.Room
		if err := s.DB.Where(&models.Room{ID: id}).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnitNotFound
			}
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return &UnitInfo{ID: room.ID, HotelID: room.HotelID, Rate: room.PricePerNight}, nil
	case types.KIND_APARTMENT:
		var apt models.Apartment
		if err := s.DB.Where(&models.Apartment{ID: id}).First(&apt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnitNotFound
			}
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return &UnitInfo{ID: apt.ID, HotelID: apt.HotelID, Rate: apt.PricePerNight}, nil
	case types.KIND_EVENT_ROOM:
		var er models.EventRoom
		if err := s.DB.Where(&models.EventRoom{ID: id}).First(&er).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnitNotFound
			}
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return &UnitInfo{ID: er.ID, HotelID: er.HotelID, Rate: er.RentalPrice}, nil
	}
	return nil, ErrUnitNotFound
}

type GormReservationStore struct {
	DB *gorm.DB
}

func (s *GormReservationStore) Get(kind types.ReservationKind, id uint) (*models.Reservation, error) {
	var res models.Reservation
	err := s.DB.
		Where(&models.Reservation{ID: id, Kind: kind}).
		First(&res).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &res, nil
}

func (s *GormReservationStore) ListActive(kind types.ReservationKind, unitID uint, onDate *time.Time, excludeID uint) ([]models.Reservation, error) {
	q := s.DB.
		Model(&models.Reservation{}).
		Where("kind = ? AND unit_id = ?", kind, unitID).
		Where("status <> ?", types.RESERVATION_CANCELLED)
	if onDate != nil {
		q = q.Where("event_date = ?", *onDate)
	}
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var out []models.Reservation
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}

func (s *GormReservationStore) Save(r *models.Reservation) error {
	if err := s.DB.Save(r).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (s *GormReservationStore) Delete(kind types.ReservationKind, id uint) error {
	err := s.DB.
		Where("kind = ?", kind).
		Delete(&models.Reservation{}, id).
		Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func unitTableFor(kind types.ReservationKind) string {
	switch kind {
	case types.KIND_APARTMENT:
		return "apartments"
	case types.KIND_EVENT_ROOM:
		return "event_rooms"
	default:
		return "rooms"
	}
}

func (s *GormReservationStore) Search(kind types.ReservationKind, filters *types.ReservationQueryFilters, userID *uint, adminHotelIDs []uint) ([]models.Reservation, error) {
	dateCol := "check_in_date"
	if kind == types.KIND_EVENT_ROOM {
		dateCol = "event_date"
	}
	q := s.DB.
		Model(&models.Reservation{}).
		Where("kind = ?", kind)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if filters != nil {
		if filters.UnitID != 0 {
			q = q.Where("unit_id = ?", filters.UnitID)
		}
		if filters.Status != "" {
			q = q.Where("status = ?", filters.Status)
		}
		if filters.Email != "" {
			q = q.Where("email ILIKE ?", "%"+filters.Email+"%")
		}
		if filters.FromDate != "" {
			q = q.Where(dateCol+" >= ?", filters.FromDate)
		}
		if filters.ToDate != "" {
			q = q.Where(dateCol+" <= ?", filters.ToDate)
		}
	}
	if len(adminHotelIDs) > 0 {
		sub := fmt.Sprintf("unit_id IN (SELECT id FROM %s WHERE hotel_id IN (?))", unitTableFor(kind))
		q = q.Where(sub, adminHotelIDs)
	}
	var out []models.Reservation
	if err := q.Order(dateCol + " desc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}

func (s *GormReservationStore) InTx(fn func(ReservationStore) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&GormReservationStore{DB: tx})
	})
}
