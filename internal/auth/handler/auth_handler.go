package handler

import (
	"errors"

	"github.com/Hoff08/barbeariateste/internal/auth/domain"
	"github.com/Hoff08/barbeariateste/internal/auth/dto"
	"github.com/Hoff08/barbeariateste/internal/auth/service"
	autherror "github.com/Hoff08/barbeariateste/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService}
}

// statusForError maps the domain error taxonomy onto HTTP statuses.
// Anything unrecognized is a storage or internal failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return fiber.StatusConflict
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrTokenInvalid),
		errors.Is(err, autherror.ErrTokenExpired),
		errors.Is(err, autherror.ErrTokenKindMismatch),
		errors.Is(err, autherror.ErrSessionNotFound),
		errors.Is(err, autherror.ErrSessionExpired),
		errors.Is(err, autherror.ErrIdentityVerificationFailed):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		// Raw storage errors stay inside the subsystem boundary.
		message = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, email and password are required"})
	}
	if len(input.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "password must be at least 6 characters"})
	}

	resp, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	resp, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// externalLogin handles both providers; the status code distinguishes
// first-time provisioning (201) from a login to an existing account.
func (h *AuthHandler) externalLogin(c *fiber.Ctx, p domain.Provider) error {
	var input dto.ExternalLoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.IDToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "idToken is required"})
	}

	resp, err := h.userService.ExternalLogin(c.Context(), p, input)
	if err != nil {
		return errorJSON(c, err)
	}

	status := fiber.StatusOK
	if resp.Created {
		status = fiber.StatusCreated
	}

	return c.Status(status).JSON(resp)
}

func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	return h.externalLogin(c, domain.ProviderGoogle)
}

func (h *AuthHandler) AppleLogin(c *fiber.Ctx) error {
	return h.externalLogin(c, domain.ProviderApple)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "refreshToken is required"})
	}

	tokens, err := h.userService.Refresh(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.LogoutInput
	// A missing or malformed body still logs out; there is just no
	// session to revoke.
	_ = c.BodyParser(&input)

	if err := h.userService.Logout(c.Context(), input); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals(UserIDKey).(int64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}

	user, err := h.userService.Profile(c.Context(), userID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}
