package handler

import (
	"github.com/Hoff08/barbeariateste/internal/appointment/dto"
	"github.com/Hoff08/barbeariateste/internal/appointment/service"
	authhandler "github.com/Hoff08/barbeariateste/internal/auth/handler"
	authservice "github.com/Hoff08/barbeariateste/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func RegisterRoutes(app *fiber.App, h *AppointmentHandler, tokenService authservice.TokenGenerator) {
	appointments := app.Group("/api/appointments", authhandler.RequireAuth(tokenService))
	appointments.Post("/", h.Create)
	appointments.Get("/", h.List)
}

func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals(authhandler.UserIDKey).(int64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}

	var input dto.CreateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Branch == "" || input.Professional == "" || input.Service == "" || input.Datetime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "branch, professional, service and datetime are required"})
	}

	appointment, err := h.appointmentService.Create(c.Context(), userID, input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"appointment": appointment})
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals(authhandler.UserIDKey).(int64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}

	appointments, err := h.appointmentService.ListByUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"appointments": appointments})
}
