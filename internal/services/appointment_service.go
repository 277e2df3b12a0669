package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/phonedrive/api/internal/dto"
	"github.com/phonedrive/api/internal/models"
	"github.com/phonedrive/api/internal/notify"
	"gorm.io/gorm"
)

var ErrInvalidDate = errors.New("invalid appointment date")

// Booking forms post datetime-local values; API clients post RFC 3339.
var appointmentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

type AppointmentService struct {
	db       *gorm.DB
	notifier *notify.Service
}

func NewAppointmentService(db *gorm.DB, notifier *notify.Service) *AppointmentService {
	return &AppointmentService{db: db, notifier: notifier}
}

func (s *AppointmentService) Create(req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	if req.Client == "" || req.Email == "" {
		return nil, errors.New("client and email are required")
	}
	if req.Issue == "" {
		return nil, errors.New("issue is required")
	}

	date, err := parseAppointmentDate(req.Date)
	if err != nil {
		return nil, err
	}

	appt := models.Appointment{
		Client: req.Client,
		Email:  normalizeEmail(req.Email),
		Phone:  req.Phone,
		Device: req.Device,
		Issue:  foldLocation(req.Issue, req.LocationType, req.LocationAddress),
		Date:   date,
	}

	if err := s.db.Create(&appt).Error; err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.notifier.AppointmentBooked(&appt)
	return &appt, nil
}

func (s *AppointmentService) List() ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := s.db.Order("date ASC").Find(&appts).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// foldLocation keeps the schema flat: the location mode and optional on-site
// address ride along inside the issue text.
func foldLocation(issue, locationType, locationAddress string) string {
	if locationType == "" {
		locationType = "workshop"
	}
	if locationAddress != "" {
		return fmt.Sprintf("%s (%s: %s)", issue, locationType, locationAddress)
	}
	return fmt.Sprintf("%s (%s)", issue, locationType)
}

func parseAppointmentDate(raw string) (time.Time, error) {
	for _, layout := range appointmentDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
