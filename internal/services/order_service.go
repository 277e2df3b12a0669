package services

import (
	"errors"
	"fmt"

	"github.com/phonedrive/api/internal/dto"
	"github.com/phonedrive/api/internal/models"
	"github.com/phonedrive/api/internal/notify"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderService struct {
	db       *gorm.DB
	notifier *notify.Service
}

func NewOrderService(db *gorm.DB, notifier *notify.Service) *OrderService {
	return &OrderService{db: db, notifier: notifier}
}

// Create persists the cart snapshot exactly as submitted. The total is the
// client's figure; it is NOT recomputed from catalog prices (payment happens
// in person, where the amount is checked by a human).
func (s *OrderService) Create(req *dto.CreateOrderRequest) (*models.Order, error) {
	if req.Customer == "" || req.Email == "" {
		return nil, errors.New("customer and email are required")
	}
	if len(req.Items) == 0 {
		return nil, errors.New("items are required")
	}

	order := models.Order{
		Customer: req.Customer,
		Email:    normalizeEmail(req.Email),
		Address:  req.Address,
		Total:    req.Total.Float64(),
		Items:    datatypes.JSON(req.Items),
		Status:   models.OrderStatusPayOnPickup,
		UserID:   req.UserID,
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.notifier.OrderPlaced(&order)
	return &order, nil
}

func (s *OrderService) List() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
