package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/phonedrive/api/internal/dto"
	"github.com/phonedrive/api/internal/services"
)

type AppointmentHandler struct {
	appointments *services.AppointmentService
}

func NewAppointmentHandler(appointments *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if _, err := h.appointments.Create(&req); err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid appointment date",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Appointment booked"})
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	appts, err := h.appointments.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(appts)
}

// Estimate quotes a repair for display on the booking page. The figure is
// never authoritative.
func (h *AppointmentHandler) Estimate(c *fiber.Ctx) error {
	device := c.Query("device")
	issue := c.Query("issue")
	return c.JSON(dto.EstimateResponse{
		Device: device,
		Issue:  issue,
		Price:  services.EstimateRepair(device, issue),
	})
}
