package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type ReservationKind string

const (
	KIND_ROOM       ReservationKind = "room"
	KIND_APARTMENT  ReservationKind = "apartment"
	KIND_EVENT_ROOM ReservationKind = "event_room"
)

type ReservationStatus string

const (
	RESERVATION_PENDING   ReservationStatus = "pending"
	RESERVATION_CONFIRMED ReservationStatus = "confirmed"
	RESERVATION_CANCELLED ReservationStatus = "cancelled"
	RESERVATION_COMPLETED ReservationStatus = "completed"
)

func ValidReservationStatus(s string) bool {
	switch ReservationStatus(s) {
	case RESERVATION_PENDING, RESERVATION_CONFIRMED, RESERVATION_CANCELLED, RESERVATION_COMPLETED:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PAYMENT_CASH          PaymentMethod = "cash"
	PAYMENT_CARD          PaymentMethod = "card"
	PAYMENT_MOBILE_MONEY  PaymentMethod = "mobile money"
	PAYMENT_BANK_TRANSFER PaymentMethod = "bank transfer"
	PAYMENT_PAYPAL        PaymentMethod = "paypal"
)

type EventType string

const (
	EVENT_WEDDING    EventType = "wedding"
	EVENT_BIRTHDAY   EventType = "birthday"
	EVENT_CONFERENCE EventType = "conference"
	EVENT_BAPTISM    EventType = "baptism"
	EVENT_SEMINAR    EventType = "seminar"
	EVENT_PARTY      EventType = "party"
	EVENT_OTHER      EventType = "other"
)

type ShiftType string

const (
	SHIFT_DAY   ShiftType = "day"
	SHIFT_NIGHT ShiftType = "night"
)

type AttendanceStatus string

const (
	ATTENDANCE_PRESENT    AttendanceStatus = "present"
	ATTENDANCE_ABSENT     AttendanceStatus = "absent"
	ATTENDANCE_LATE       AttendanceStatus = "late"
	ATTENDANCE_LEFT_EARLY AttendanceStatus = "left_early"
	ATTENDANCE_JUSTIFIED  AttendanceStatus = "justified"
)

type PaymentStatus string

const (
	PAYMENT_PENDING PaymentStatus = "pending"
	PAYMENT_PAID    PaymentStatus = "paid"
)

type Role string

const (
	ROLE_USER       Role = "user"
	ROLE_ADMIN      Role = "admin"
	ROLE_SUPERADMIN Role = "superadmin"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type RegisterUserRequestBody struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminRequestBody struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type CreateHotelRequestBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars" binding:"required,min=1,max=5"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Website     string `json:"website,omitempty"`
	City        string `json:"city" binding:"required"`
	Country     string `json:"country" binding:"required"`
}

type CreateRoomRequestBody struct {
	RoomNumber    string  `json:"room_number" binding:"required"`
	Description   string  `json:"description,omitempty"`
	RoomType      string  `json:"room_type" binding:"required"`
	Capacity      int     `json:"capacity" binding:"required,min=1"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
}

type CreateApartmentRequestBody struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description,omitempty"`
	ApartmentType string  `json:"apartment_type" binding:"required"`
	Capacity      int     `json:"capacity" binding:"required,min=1"`
	RoomCount     int     `json:"room_count" binding:"required,min=1"`
	HasWifi       bool    `json:"has_wifi,omitempty"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
}

type CreateEventRoomRequestBody struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description,omitempty"`
	Capacity    int     `json:"capacity" binding:"required,min=1"`
	RentalPrice float64 `json:"rental_price" binding:"required,gt=0"`
}

// CreateStayReservationRequestBody is shared by room and apartment bookings,
// which only differ in the unit they point at.
type CreateStayReservationRequestBody struct {
	UnitID        uint   `json:"unit_id" binding:"required"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	CheckInDate   string `json:"check_in_date" binding:"required,isodate"`
	CheckOutDate  string `json:"check_out_date" binding:"required,isodate"`
	PartySize     int    `json:"party_size" binding:"required,min=1"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type CreateEventReservationRequestBody struct {
	UnitID        uint   `json:"unit_id" binding:"required"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	EventType     string `json:"event_type" binding:"required"`
	EventDate     string `json:"event_date" binding:"required,isodate"`
	StartTime     string `json:"start_time" binding:"required,clocktime"`
	EndTime       string `json:"end_time" binding:"required,clocktime"`
	GuestCount    int    `json:"guest_count" binding:"required,min=1"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// UpdateReservationRequestBody carries partial changes. Nil pointers leave
// the stored value untouched.
type UpdateReservationRequestBody struct {
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Email         *string `json:"email,omitempty" binding:"omitempty,email"`
	CheckInDate   *string `json:"check_in_date,omitempty" binding:"omitempty,isodate"`
	CheckOutDate  *string `json:"check_out_date,omitempty" binding:"omitempty,isodate"`
	EventType     *string `json:"event_type,omitempty"`
	EventDate     *string `json:"event_date,omitempty" binding:"omitempty,isodate"`
	StartTime     *string `json:"start_time,omitempty" binding:"omitempty,clocktime"`
	EndTime       *string `json:"end_time,omitempty" binding:"omitempty,clocktime"`
	PartySize     *int    `json:"party_size,omitempty" binding:"omitempty,min=1"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Status        *string `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type CheckAvailabilityRequestBody struct {
	UnitID       uint    `json:"unit_id" binding:"required"`
	CheckInDate  *string `json:"check_in_date,omitempty" binding:"omitempty,isodate"`
	CheckOutDate *string `json:"check_out_date,omitempty" binding:"omitempty,isodate"`
	EventDate    *string `json:"event_date,omitempty" binding:"omitempty,isodate"`
	StartTime    *string `json:"start_time,omitempty" binding:"omitempty,clocktime"`
	EndTime      *string `json:"end_time,omitempty" binding:"omitempty,clocktime"`
	ExcludeID    uint    `json:"exclude_id,omitempty"`
}

type ReservationQueryFilters struct {
	UnitID   uint   `form:"unit_id,omitempty"`
	Status   string `form:"status,omitempty"`
	Email    string `form:"email,omitempty"`
	FromDate string `form:"from_date,omitempty"`
	ToDate   string `form:"to_date,omitempty"`
}

type CreatePersonnelRequestBody struct {
	FirstName    string  `json:"first_name" binding:"required"`
	LastName     string  `json:"last_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Address      string  `json:"address" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Salary       float64 `json:"salary" binding:"required,gt=0"`
	Neighborhood string  `json:"neighborhood" binding:"required"`
	ShiftType    string  `json:"shift_type" binding:"required,oneof=day night"`
}

type AttendanceRequestBody struct {
	QRCodeID string `json:"qr_code_id" binding:"required"`
	DeviceID string `json:"device_id" binding:"required"`
}

type JustifyAbsenceRequestBody struct {
	PersonnelID   uint   `json:"personnel_id" binding:"required"`
	Date          string `json:"date" binding:"required,isodate"`
	Justification string `json:"justification" binding:"required"`
}

type GeneratePaymentsRequestBody struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

type ContactRequestBody struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ChatbotRequestBody struct {
	Message string `json:"message" binding:"required"`
}
