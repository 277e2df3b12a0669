package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phonedrive/api/internal/config"
	"github.com/phonedrive/api/internal/models"
)

// Service fans out the storefront's fire-and-forget notifications. Every
// method returns immediately; sends run in their own goroutine and failures
// are logged, never surfaced to the request that triggered them. There is no
// retry and no delivery guarantee.
type Service struct {
	mailer Mailer
	events *EventPublisher
	cfg    *config.Config
}

func NewService(mailer Mailer, events *EventPublisher, cfg *config.Config) *Service {
	return &Service{mailer: mailer, events: events, cfg: cfg}
}

func (s *Service) Welcome(user *models.User) {
	go s.send(user.Email,
		fmt.Sprintf("Welcome to %s!", s.cfg.ShopName),
		fmt.Sprintf("<h1>Welcome %s!</h1><p>Your account is ready.</p>", user.Name))
}

func (s *Service) OrderPlaced(order *models.Order) {
	go func() {
		s.send(order.Email,
			"Order confirmed",
			fmt.Sprintf("<h1>Thank you %s!</h1><p>Your %.2f€ order is registered. Payment is due at pickup at %s.</p>",
				order.Customer, order.Total, s.cfg.ShopAddress))

		if s.cfg.OwnerEmail != "" {
			s.send(s.cfg.OwnerEmail,
				fmt.Sprintf("Sale: %.2f€", order.Total),
				fmt.Sprintf("<p>New order #%d from %s (%s).</p>", order.ID, order.Customer, order.Email))
		}

		s.publish("order.created", order)
	}()
}

func (s *Service) AppointmentBooked(appt *models.Appointment) {
	go func() {
		s.send(appt.Email,
			"Repair appointment confirmed",
			fmt.Sprintf("<h1>See you soon %s!</h1><p>%s — %s on %s.</p>",
				appt.Client, appt.Device, appt.Issue, appt.Date.Format("2006-01-02 15:04")))

		s.publish("appointment.created", appt)
	}()
}

func (s *Service) send(to, subject, body string) {
	if to == "" {
		return
	}
	if err := s.mailer.Send(to, subject, body); err != nil {
		slog.Error("notification email failed", "to", to, "subject", subject, "error", err)
	}
}

func (s *Service) publish(key string, v any) {
	if s.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.events.PublishJSON(ctx, key, v); err != nil {
		slog.Error("event publish failed", "key", key, "error", err)
	}
}
