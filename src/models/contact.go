package models

import "venise/src/types"

type ContactMessage struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`

	types.Timestamps
}
