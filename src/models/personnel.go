package models

import (
	"venise/src/types"
	"time"
)

type Personnel struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	FirstName     string  `json:"first_name,omitempty"`
	LastName      string  `json:"last_name,omitempty"`
	Email         string  `gorm:"uniqueIndex" json:"email,omitempty"`
	Address       string  `json:"address,omitempty"`
	Phone         string  `gorm:"uniqueIndex" json:"phone,omitempty"`
	Salary        float64 `json:"salary,omitempty"`
	Neighborhood  string  `json:"neighborhood,omitempty"`
	QRCodeID      string  `gorm:"uniqueIndex" json:"qr_code_id,omitempty"`
	PhoneDeviceID string  `gorm:"uniqueIndex" json:"phone_device_id,omitempty"`
	ShiftType     string  `json:"shift_type,omitempty"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`
	HotelID       uint    `gorm:"index" json:"hotel_id,omitempty"`

	Hotel       *Hotel       `gorm:"foreignKey:hotel_id" json:"-"`
	Attendances []Attendance `gorm:"foreignKey:personnel_id" json:"attendances,omitempty"`
	Payments    []Payment    `gorm:"foreignKey:personnel_id" json:"payments,omitempty"`

	types.Timestamps
}

type Attendance struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	Date          time.Time  `gorm:"type:date;index" json:"date"`
	ArrivalTime   *time.Time `json:"arrival_time,omitempty"`
	DepartureTime *time.Time `json:"departure_time,omitempty"`
	Status        string     `gorm:"default:'present'" json:"status,omitempty"`
	Justification *string    `json:"justification,omitempty"`
	Deduction     float64    `json:"deduction"`
	PersonnelID   uint       `gorm:"index" json:"personnel_id,omitempty"`

	types.Timestamps
}

type Payment struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Month           int       `json:"month,omitempty"`
	Year            int       `json:"year,omitempty"`
	BaseSalary      float64   `json:"base_salary,omitempty"`
	TotalDeductions float64   `json:"total_deductions"`
	NetSalary       float64   `json:"net_salary,omitempty"`
	PaymentDate     time.Time `json:"payment_date,omitempty"`
	Status          string    `gorm:"default:'pending'" json:"status,omitempty"`
	PersonnelID     uint      `gorm:"index" json:"personnel_id,omitempty"`

	types.Timestamps
}
