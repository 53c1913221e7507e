package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/service"
	"github.com/sliate-rat/university-api/internal/infrastructure/config"
	mongodb "github.com/sliate-rat/university-api/internal/infrastructure/db/mongo"
)

// seedAdmin creates the initial administrator account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and the account does not exist yet. Idempotent, so
// it runs on every startup.
func seedAdmin(ctx context.Context, db *mongo.Database, cfg config.AdminConfig, log zerolog.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		log.Debug().Msg("admin seed skipped, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	users := mongodb.NewUserRepository(db)
	email := strings.ToLower(strings.TrimSpace(cfg.Email))

	if _, err := users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := service.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Username:  cfg.Username,
		Email:     email,
		Password:  hash,
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := users.Create(ctx, admin); err != nil {
		// Lost a race against another instance seeding the same account.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	log.Info().Str("email", email).Msg("seeded admin account")
	return nil
}
