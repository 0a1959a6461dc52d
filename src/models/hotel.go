package models

import "venise/src/types"

type Hotel struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `json:"name,omitempty"`
	Slug        string  `gorm:"uniqueIndex" json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Stars       int     `json:"stars,omitempty"`
	Email       string  `json:"email,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Website     *string `json:"website,omitempty"`
	City        string  `json:"city,omitempty"`
	Country     string  `json:"country,omitempty"`
	AdminID     uint    `json:"admin_id,omitempty"`

	Admin      *User       `gorm:"foreignKey:admin_id" json:"-"`
	Rooms      []Room      `gorm:"foreignKey:hotel_id" json:"rooms,omitempty"`
	Apartments []Apartment `gorm:"foreignKey:hotel_id" json:"apartments,omitempty"`
	EventRooms []EventRoom `gorm:"foreignKey:hotel_id" json:"event_rooms,omitempty"`
	Personnel  []Personnel `gorm:"foreignKey:hotel_id" json:"personnel,omitempty"`

	types.Timestamps
}
