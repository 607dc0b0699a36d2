package main

import (
	"context"
	"log"
	"time"

	"github.com/Hoff08/barbeariateste/config"
	"github.com/Hoff08/barbeariateste/db"
	appointmenthandler "github.com/Hoff08/barbeariateste/internal/appointment/handler"
	appointmentrepo "github.com/Hoff08/barbeariateste/internal/appointment/repository/postgres"
	appointmentservice "github.com/Hoff08/barbeariateste/internal/appointment/service"
	"github.com/Hoff08/barbeariateste/internal/auth/domain"
	"github.com/Hoff08/barbeariateste/internal/auth/handler"
	"github.com/Hoff08/barbeariateste/internal/auth/provider"
	repo "github.com/Hoff08/barbeariateste/internal/auth/repository/postgres"
	"github.com/Hoff08/barbeariateste/internal/auth/service"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

// buildVerifier wires the real verifier for an enabled provider and the
// synthetic development stand-in otherwise. The choice is made once at
// construction; request handling never branches on provider config.
func buildVerifier(p domain.Provider, pc config.ProviderConfig, cfg *config.Config) provider.IdentityVerifier {
	if pc.Enabled {
		switch p {
		case domain.ProviderGoogle:
			return provider.NewGoogleVerifier(pc.ClientID)
		case domain.ProviderApple:
			return provider.NewAppleVerifier(pc.ClientID)
		}
	}

	if !cfg.IsDevelopment() {
		log.Fatalf("provider %s is disabled but ENV is %q; synthetic identities are development-only", p, cfg.Env)
	}
	log.Printf("provider %s disabled, using synthetic development identities", p)

	return provider.NewDevVerifier(p, func() int64 { return time.Now().Unix() })
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	ctx := context.Background()

	if err := db.Migrate(cfg.DBURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	defer dbPool.Close()

	authRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)

	verifiers := map[domain.Provider]provider.IdentityVerifier{
		domain.ProviderGoogle: buildVerifier(domain.ProviderGoogle, cfg.Google, cfg),
		domain.ProviderApple:  buildVerifier(domain.ProviderApple, cfg.Apple, cfg),
	}

	userService := service.NewUserService(authRepo, authRepo, tokenService, verifiers)
	authHandler := handler.NewAuthHandler(userService, tokenService)

	appointmentService := appointmentservice.NewAppointmentService(appointmentrepo.NewPostgresRepository(dbPool))
	appointmentHandler := appointmenthandler.NewAppointmentHandler(appointmentService)

	sweeper := service.NewSessionSweeper(authRepo)
	go sweeper.Start(ctx, time.Duration(cfg.SweepIntervalMin)*time.Minute)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)
	appointmenthandler.RegisterRoutes(app, appointmentHandler, tokenService)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
