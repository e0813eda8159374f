package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/itsobank/infra"
	infra_repository "github.com/amirasaad/itsobank/infra/repository"
	infra_session "github.com/amirasaad/itsobank/infra/session"
	bankfixtures "github.com/amirasaad/itsobank/internal/fixtures/bank"
	"github.com/amirasaad/itsobank/pkg/app"
	"github.com/amirasaad/itsobank/pkg/config"
	"github.com/amirasaad/itsobank/pkg/repository"
)

const seedTimeout = 30 * time.Second

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if cfg.DB.Migrate {
		if err := infra.Migrate(db, logger); err != nil {
			return nil, err
		}
	}

	// Initialize unit of work
	deps.Uow = infra_repository.NewUoW(db)

	if cfg.Fixtures != nil && cfg.Fixtures.Seed {
		if err := seedFixtures(deps.Uow, logger); err != nil {
			// A demo dataset is not required to serve requests.
			logger.Warn("Failed to load bank fixtures", "error", err)
		}
	}

	// Initialize session storage; nil falls back to fiber's memory storage
	if cfg.Redis != nil && cfg.Redis.URL != "" {
		storage, err := infra_session.NewRedisStorage(cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis session storage: %w", err)
		}
		deps.SessionStorage = storage
	} else {
		logger.Info("REDIS_URL not set; sessions are kept in memory")
	}

	return
}

func seedFixtures(uow repository.UnitOfWork, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	data, err := bankfixtures.Load("", "")
	if err != nil {
		return err
	}
	return bankfixtures.Seed(ctx, uow, data, logger)
}
