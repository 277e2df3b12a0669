package models

import "time"

type Appointment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Client string `gorm:"not null;size:255" json:"client"`
	Email  string `gorm:"not null;size:255" json:"email"`
	Phone  string `gorm:"size:50" json:"phone"`
	Device string `gorm:"size:100" json:"device"`
	// Issue carries the location mode (and on-site address) folded in,
	// e.g. "Broken screen (workshop)".
	Issue     string    `gorm:"type:text" json:"issue"`
	Date      time.Time `gorm:"index" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
