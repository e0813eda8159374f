package app

import (
	"log/slog"

	"github.com/amirasaad/itsobank/pkg/config"
	"github.com/amirasaad/itsobank/pkg/handler/listing"
	"github.com/amirasaad/itsobank/pkg/repository"
	"github.com/amirasaad/itsobank/pkg/service/bank"
	"github.com/gofiber/fiber/v2"
)

// Deps contains the infrastructure the application is built from.
type Deps struct {
	Uow repository.UnitOfWork
	// SessionStorage backs the web session; nil means Fiber's in-memory storage.
	SessionStorage fiber.Storage
	Logger         *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	BankService    *bank.Service
	ListingHandler *listing.Handler
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	a := &App{
		Deps:   deps,
		Config: cfg,
	}
	a.BankService = bank.New(deps.Uow, deps.Logger)
	a.ListingHandler = listing.New(a.BankService, deps.Logger)
	return a
}
