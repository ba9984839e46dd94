package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crewboard/crewboard/internal/app/models"
	"github.com/crewboard/crewboard/internal/app/repositories"
	"github.com/crewboard/crewboard/internal/config"
	"github.com/crewboard/crewboard/internal/pkg/apperrors"
	"github.com/crewboard/crewboard/internal/pkg/logger"
)

// CreateDefaultData creates the default admin account when the users table
// is empty. The password comes from ADMIN_PASSWORD; without it a fresh
// deployment gets the documented development default.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.UsernameExists(ctx, "admin")
	if err != nil {
		logger.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		logger.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	logger.Info().Msg("Creating default admin user...")

	admin := &models.User{
		Username:     "admin",
		Password:     config.GetEnv("ADMIN_PASSWORD", "Admin123!"),
		Email:        "admin@crewboard.local",
		NomeCompleto: "Administrador",
		Role:         "admin",
		Ativo:        true,
	}

	adminID, err := userRepo.Create(ctx, admin)
	if err != nil {
		// Concurrent startup may have won the race; not a failure.
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			logger.Info().Msg("Admin user created concurrently, skipping")
			return nil
		}
		logger.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	logger.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
	return nil
}
