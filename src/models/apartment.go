package models

import "venise/src/types"

type Apartment struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	Name          string  `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	ApartmentType string  `json:"apartment_type,omitempty"`
	Capacity      int     `json:"capacity,omitempty"`
	RoomCount     int     `json:"room_count,omitempty"`
	HasWifi       bool    `json:"has_wifi"`
	PricePerNight float64 `json:"price_per_night,omitempty"`
	IsAvailable   bool    `gorm:"default:true" json:"is_available"`
	HotelID       uint    `gorm:"index" json:"hotel_id,omitempty"`

	Hotel *Hotel `gorm:"foreignKey:hotel_id" json:"hotel,omitempty"`

	types.Timestamps
}
