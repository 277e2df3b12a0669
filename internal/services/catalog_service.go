package services

import (
	"errors"
	"fmt"

	"github.com/phonedrive/api/internal/dto"
	"github.com/phonedrive/api/internal/models"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *CatalogService) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) Create(req *dto.CreateProductRequest) (*models.Product, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if req.Price <= 0 {
		return nil, errors.New("price must be a positive number")
	}

	product := models.Product{
		Model:       req.Model,
		Price:       req.Price.Float64(),
		Storage:     req.Storage,
		Color:       req.Color,
		Condition:   req.Condition,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) Delete(id uint) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
