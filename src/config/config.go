package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

const (
	DATE_PARSE_FORMAT = "2006-01-02"
	TIME_PARSE_FORMAT = "15:04"
)

// DefaultReservationStatus decides whether a freshly created reservation
// starts out as pending or confirmed. Some deployments want an explicit
// confirmation step, others book directly.
func DefaultReservationStatus() string {
	s := os.Getenv("DEFAULT_RESERVATION_STATUS")
	if s != "pending" && s != "confirmed" {
		return "confirmed"
	}
	return s
}

func AdminNotifyAddress() string {
	addr := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if addr == "" {
		addr = "reservations@venise-hotels.example"
	}
	return addr
}
