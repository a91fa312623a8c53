package main

import (
	"database/sql"
	"log/slog"

	"github.com/clientbook/clientbook/internal/config"
	"github.com/clientbook/clientbook/internal/platform/postgres"
	"github.com/clientbook/clientbook/internal/service"
)

// application holds the wired dependencies for the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	clientService  service.ClientService
	accountService service.AccountService
}

// newApplication constructs the dependency graph: stores over the database
// connection, services over the stores. Handlers are created at router setup.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) *application {
	clientStore := postgres.NewPostgresClientStore(db, logger)
	accountStore := postgres.NewPostgresAccountStore(db, logger)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		clientService:  service.NewClientService(clientStore, logger),
		accountService: service.NewAccountService(clientStore, accountStore, logger),
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
