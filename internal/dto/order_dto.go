package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	Customer string          `json:"customer"`
	Email    string          `json:"email"`
	Address  string          `json:"address"`
	Total    Price           `json:"total"`
	Items    json.RawMessage `json:"items"`
	UserID   *uuid.UUID      `json:"userId,omitempty"`
}
