package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Model       string    `gorm:"not null;size:255" json:"model"`
	Price       float64   `gorm:"not null" json:"price"`
	Storage     string    `gorm:"size:50" json:"storage"`
	Color       string    `gorm:"size:50" json:"color"`
	Condition   string    `gorm:"size:100" json:"condition"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"type:text" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
