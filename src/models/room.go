package models

import "venise/src/types"

type Room struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	RoomNumber    string  `json:"room_number,omitempty"`
	Description   *string `json:"description,omitempty"`
	RoomType      string  `json:"room_type,omitempty"`
	Capacity      int     `json:"capacity,omitempty"`
	PricePerNight float64 `json:"price_per_night,omitempty"`
	IsAvailable   bool    `gorm:"default:true" json:"is_available"`
	HotelID       uint    `gorm:"index" json:"hotel_id,omitempty"`

	Hotel *Hotel `gorm:"foreignKey:hotel_id" json:"hotel,omitempty"`

	types.Timestamps
}
