package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/google", h.GoogleLogin)
	auth.Post("/apple", h.AppleLogin)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", RequireAuth(h.tokenService), h.Logout)
	auth.Get("/profile", RequireAuth(h.tokenService), h.Profile)
}
