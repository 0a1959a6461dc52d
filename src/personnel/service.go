package personnel

import (
	"errors"
	"fmt"
	"log"
	"time"
	"venise/src/models"
	"venise/src/types"
	"venise/src/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPersonnelNotFound  = errors.New("personnel not found")
	ErrDeviceMismatch     = errors.New("device authentication failed")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrAlreadyCheckedOut  = errors.New("departure already recorded")
	ErrNoCheckIn          = errors.New("no check-in recorded today")
	ErrDuplicateEmployee  = errors.New("email or phone already in use")
	ErrPaymentsExist      = errors.New("payments for this period already generated")
	ErrPaymentAlreadyPaid = errors.New("payment already settled")
)

type Service struct {
	DB *gorm.DB
}

// NewBadgeID builds the content encoded into an employee's QR badge.
func NewBadgeID(hotelID uint) string {
	return fmt.Sprintf("PERS-%d-%s", hotelID, uuid.NewString())
}

// Create registers an employee for a hotel, assigning a QR badge and a
// device fingerprint derived from their phone number.
func (s *Service) Create(body *types.CreatePersonnelRequestBody, hotelID uint) (*models.Personnel, error) {
	p := &models.Personnel{
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		Email:         body.Email,
		Address:       body.Address,
		Phone:         body.Phone,
		Salary:        body.Salary,
		Neighborhood:  body.Neighborhood,
		ShiftType:     body.ShiftType,
		IsActive:      true,
		HotelID:       hotelID,
		QRCodeID:      NewBadgeID(hotelID),
		PhoneDeviceID: utils.DeviceID(body.Phone),
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Personnel{}).
			Where("email = ? OR phone = ?", body.Email, body.Phone).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEmployee
		}
		return tx.Create(p).Error
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) byBadge(qrCodeID, deviceID string) (*models.Personnel, error) {
	var p models.Personnel
	if err := s.DB.Where(&models.Personnel{QRCodeID: qrCodeID}).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonnelNotFound
		}
		return nil, err
	}
	if p.PhoneDeviceID != deviceID {
		return nil, ErrDeviceMismatch
	}
	return &p, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn records a badge-in scan and grades lateness.
func (s *Service) CheckIn(qrCodeID, deviceID string, now time.Time) (*models.Attendance, error) {
	p, err := s.byBadge(qrCodeID, deviceID)
	if err != nil {
		return nil, err
	}
	today := dateOnly(now)
	status, deduction := EvaluateArrival(types.ShiftType(p.ShiftType), now)

	var att models.Attendance
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where(&models.Attendance{PersonnelID: p.ID}).
			Where("date = ?", today).
			First(&att).
			Error
		if err == nil && att.ArrivalTime != nil {
			return ErrAlreadyCheckedIn
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		att.PersonnelID = p.ID
		att.Date = today
		att.ArrivalTime = &now
		att.Status = string(status)
		att.Deduction = deduction
		return tx.Save(&att).Error
	})
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// CheckOut records a badge-out scan and grades early departures.
func (s *Service) CheckOut(qrCodeID, deviceID string, now time.Time) (*models.Attendance, error) {
	p, err := s.byBadge(qrCodeID, deviceID)
	if err != nil {
		return nil, err
	}
	today := dateOnly(now)

	var att models.Attendance
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where(&models.Attendance{PersonnelID: p.ID}).
			Where("date = ?", today).
			First(&att).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoCheckIn
			}
			return err
		}
		if att.DepartureTime != nil {
			return ErrAlreadyCheckedOut
		}
		status, deduction := EvaluateDeparture(types.ShiftType(p.ShiftType), types.AttendanceStatus(att.Status), att.Deduction, now)
		att.Status = string(status)
		att.Deduction = deduction
		att.DepartureTime = &now
		return tx.Save(&att).Error
	})
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// Justify clears the deduction for a day and marks it justified, creating
// the attendance row when the employee never badged at all.
func (s *Service) Justify(personnelID uint, date time.Time, reason string) error {
	day := dateOnly(date)
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var p models.Personnel
		if err := tx.First(&p, personnelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPersonnelNotFound
			}
			return err
		}
		var att models.Attendance
		err := tx.
			Where(&models.Attendance{PersonnelID: personnelID}).
			Where("date = ?", day).
			First(&att).
			Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		att.PersonnelID = personnelID
		att.Date = day
		att.Status = string(types.ATTENDANCE_JUSTIFIED)
		att.Justification = &reason
		att.Deduction = 0
		return tx.Save(&att).Error
	})
}

// MarkAbsentees writes an absence row, with the absence deduction, for every
// active employee who never badged in on the given day. Run nightly by the
// scheduler.
func (s *Service) MarkAbsentees(day time.Time) (int, error) {
	day = dateOnly(day)
	marked := 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var staff []models.Personnel
		if err := tx.Where(&models.Personnel{IsActive: true}).Find(&staff).Error; err != nil {
			return err
		}
		for _, p := range staff {
			var count int64
			if err := tx.
				Model(&models.Attendance{}).
				Where(&models.Attendance{PersonnelID: p.ID}).
				Where("date = ?", day).
				Count(&count).
				Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			att := models.Attendance{
				PersonnelID: p.ID,
				Date:        day,
				Status:      string(types.ATTENDANCE_ABSENT),
				Deduction:   AbsenceDeduction,
			}
			if err := tx.Create(&att).Error; err != nil {
				return err
			}
			marked++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if marked > 0 {
		log.Printf("Marked %d absentees for %s\n", marked, day.Format("2006-01-02"))
	}
	return marked, nil
}

// GeneratePayments creates one payroll row per employee for the month,
// netting out the month's attendance deductions. hotelIDs narrows the run to
// an admin's hotels; empty means all hotels.
func (s *Service) GeneratePayments(month, year int, hotelIDs []uint) (int, error) {
	generated := 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.
			Model(&models.Payment{}).
			Where(&models.Payment{Month: month, Year: year}).
			Count(&existing).
			Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrPaymentsExist
		}

		q := tx.Where(&models.Personnel{IsActive: true})
		if len(hotelIDs) > 0 {
			q = q.Where("hotel_id IN (?)", hotelIDs)
		}
		var staff []models.Personnel
		if err := q.Find(&staff).Error; err != nil {
			return err
		}

		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)
		for _, p := range staff {
			var total float64
			if err := tx.
				Model(&models.Attendance{}).
				Where(&models.Attendance{PersonnelID: p.ID}).
				Where("date >= ? AND date < ?", from, to).
				Select("COALESCE(SUM(deduction), 0)").
				Scan(&total).
				Error; err != nil {
				return err
			}
			payment := models.Payment{
				PersonnelID:     p.ID,
				Month:           month,
				Year:            year,
				BaseSalary:      p.Salary,
				TotalDeductions: total,
				NetSalary:       p.Salary - total,
				Status:          string(types.PAYMENT_PENDING),
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			generated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return generated, nil
}

// MarkPaymentPaid settles a payroll row.
func (s *Service) MarkPaymentPaid(paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, paymentID).Error; err != nil {
			return err
		}
		if payment.Status == string(types.PAYMENT_PAID) {
			return ErrPaymentAlreadyPaid
		}
		payment.Status = string(types.PAYMENT_PAID)
		payment.PaymentDate = time.Now()
		return tx.Save(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
