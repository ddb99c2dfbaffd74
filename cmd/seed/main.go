// Command seed creates customer or admin accounts. It is the only way to
// create admins; the API only registers customers.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/animal-catalog/internal/auth"
	"github.com/spec-kit/animal-catalog/internal/config"
	"github.com/spec-kit/animal-catalog/internal/domain"
	"github.com/spec-kit/animal-catalog/internal/observability"
	"github.com/spec-kit/animal-catalog/internal/persistence"
	"github.com/spec-kit/animal-catalog/internal/repository"
)

func main() {
	username := flag.String("username", os.Getenv("SEED_USERNAME"), "account username")
	password := flag.String("password", os.Getenv("SEED_PASSWORD"), "account password")
	role := flag.String("role", string(domain.RoleAdmin), "account role: admin or customer")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("username and password required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	if !pg.Ready() {
		logger.Fatal("seeding requires POSTGRES_DSN")
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	hash, err := auth.HashPassword(*password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	id := uuid.NewString()
	switch domain.Role(*role) {
	case domain.RoleAdmin:
		err = repository.NewAdminRepository(pg.PoolHandle()).Create(ctx, &domain.Admin{ID: id, Username: *username, PasswordHash: hash})
	case domain.RoleCustomer:
		err = repository.NewCustomerRepository(pg.PoolHandle()).Create(ctx, &domain.Customer{ID: id, Username: *username, PasswordHash: hash})
	default:
		logger.Fatal("unknown role", zap.String("role", *role))
	}

	if errors.Is(err, repository.ErrDuplicateUsername) {
		logger.Info("account already exists; skipping", zap.String("username", *username), zap.String("role", *role))
		return
	}
	if err != nil {
		logger.Fatal("failed to create account", zap.Error(err))
	}
	logger.Info("account created", zap.String("id", id), zap.String("username", *username), zap.String("role", *role))
}
