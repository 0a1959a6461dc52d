package models

import "venise/src/types"

type EventRoom struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Capacity    int     `json:"capacity,omitempty"`
	RentalPrice float64 `json:"rental_price,omitempty"`
	IsAvailable bool    `gorm:"default:true" json:"is_available"`
	HotelID     uint    `gorm:"index" json:"hotel_id,omitempty"`

	Hotel *Hotel `gorm:"foreignKey:hotel_id" json:"hotel,omitempty"`

	types.Timestamps
}
