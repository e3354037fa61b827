package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsiw/alumnet/internal/app/models"
	"github.com/tsiw/alumnet/internal/app/repositories"
	"github.com/tsiw/alumnet/internal/config"
	"github.com/tsiw/alumnet/internal/pkg/auth"
	"github.com/tsiw/alumnet/internal/pkg/logger"
)

// CreateDefaultAdmin makes sure a fresh database has one admin account so
// companies can be created and verified. Does nothing when the configured
// email already exists or no credentials are configured.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		logger.Debug().Msg("No default admin configured, skipping seed")
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		return fmt.Errorf("failed to check default admin: %w", err)
	}
	if exists {
		return nil
	}

	passwordHash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := &models.User{
		Type:          models.TypeAdmin,
		Name:          "Administrator",
		Email:         cfg.Seed.AdminEmail,
		Password:      passwordHash,
		CourseEndDate: time.Now().Year() - 1,
	}
	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	logger.Info().Str("email", cfg.Seed.AdminEmail).Msg("Default admin created")
	return nil
}
