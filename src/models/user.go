package models

import (
	"venise/src/types"
	"time"
)

type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	FirstName    string     `json:"first_name,omitempty"`
	LastName     string     `json:"last_name,omitempty"`
	Email        string     `gorm:"uniqueIndex" json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	Role         string     `gorm:"default:'user'" json:"role,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	ResetToken   *string    `json:"-"`
	ResetExpiry  *time.Time `json:"-"`

	Hotels       []Hotel       `gorm:"foreignKey:admin_id" json:"hotels,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:user_id" json:"reservations,omitempty"`

	types.Timestamps
}
