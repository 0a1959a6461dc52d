package models

import (
	"venise/src/types"
	"time"
)

// Reservation covers all three bookable kinds. Rooms and apartments use the
// check-in/check-out pair; event rooms use event_date plus a start/end clock
// time on that date. The unused columns stay NULL for the other kind.
type Reservation struct {
	ID            uint                    `gorm:"primarykey" json:"id"`
	Kind          types.ReservationKind   `gorm:"index" json:"kind,omitempty"`
	UnitID        uint                    `gorm:"index" json:"unit_id,omitempty"`
	FirstName     string                  `json:"first_name,omitempty"`
	LastName      string                  `json:"last_name,omitempty"`
	Email         string                  `json:"email,omitempty"`
	CheckInDate   *time.Time              `gorm:"type:date" json:"check_in_date,omitempty"`
	CheckOutDate  *time.Time              `gorm:"type:date" json:"check_out_date,omitempty"`
	EventType     *string                 `json:"event_type,omitempty"`
	EventDate     *time.Time              `gorm:"type:date" json:"event_date,omitempty"`
	StartTime     *string                 `json:"start_time,omitempty"`
	EndTime       *string                 `json:"end_time,omitempty"`
	PartySize     int                     `json:"party_size,omitempty"`
	PaymentMethod *string                 `json:"payment_method,omitempty"`
	Status        types.ReservationStatus `gorm:"default:'pending'" json:"status,omitempty"`
	TotalPrice    float64                 `json:"total_price"`
	Notes         *string                 `json:"notes,omitempty"`
	UserID        *uint                   `json:"user_id,omitempty"`

	User *User `gorm:"foreignKey:user_id" json:"-"`

	types.Timestamps
}
