package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderStatusPayOnPickup is the only status an order ever has: payment is
// collected in person when the customer picks the phones up.
const OrderStatusPayOnPickup = "payment on pickup"

type Order struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Customer string  `gorm:"not null;size:255" json:"customer"`
	Email    string  `gorm:"not null;size:255" json:"email"`
	Address  string  `gorm:"size:500" json:"address"`
	Total    float64 `gorm:"not null" json:"total"`
	// Items is the cart snapshot exactly as submitted, not a relation to
	// Product. Retired or repriced catalog entries leave it untouched.
	Items     datatypes.JSON `gorm:"type:jsonb" json:"items"`
	Status    string         `gorm:"size:50" json:"status"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
