package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phonedrive/api/internal/config"
	"github.com/phonedrive/api/internal/dto"
	"github.com/phonedrive/api/internal/models"
	"github.com/phonedrive/api/internal/notify"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnknownEmail       = errors.New("unknown email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db       *gorm.DB
	cfg      *config.Config
	notifier *notify.Service
}

func NewAuthService(db *gorm.DB, cfg *config.Config, notifier *notify.Service) *AuthService {
	return &AuthService{db: db, cfg: cfg, notifier: notifier}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)
	if email == "" || len(req.Password) < 8 {
		return nil, errors.New("email required and password must be at least 8 characters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hash),
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     models.RoleClient,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.notifier.Welcome(&user)
	return &user, nil
}

// Login checks the password and issues a 7-day token. The role claim is read
// from the stored user row, never from anything client-supplied.
func (s *AuthService) Login(req *dto.LoginRequest) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(req.Email)).First(&user).Error; err != nil {
		return "", nil, ErrUnknownEmail
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(&user, s.cfg.JWTUserExpiry)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// AdminLogin is the legacy shared-password back office entry. The issued
// token lives 2 hours and carries legacy:true so the admin gate knows its
// role claim was verified here rather than derived from a user row.
func (s *AuthService) AdminLogin(password string) (string, error) {
	if s.cfg.AdminPassword == "" ||
		subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) != 1 {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"role":   models.RoleAdmin,
		"legacy": true,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(s.cfg.JWTAdminExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// Profile returns the user with their orders, newest first.
func (s *AuthService) Profile(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&user, "id = ?", userID).Error
	if err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *AuthService) generateToken(user *models.User, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
