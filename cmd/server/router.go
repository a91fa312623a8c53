package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clientbook/clientbook/internal/api"
	apiMiddleware "github.com/clientbook/clientbook/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Routes mirror the public API: clients at /client, accounts
// nested under their owning client.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	clientHandler := api.NewClientHandler(app.clientService, app.logger)
	accountHandler := api.NewAccountHandler(app.accountService, app.logger)

	r.Route("/client", func(r chi.Router) {
		r.Post("/", clientHandler.AddClient)
		r.Get("/", clientHandler.GetAllClients)

		r.Route("/{clientid}", func(r chi.Router) {
			r.Get("/", clientHandler.GetClientByID)
			r.Put("/", clientHandler.EditClient)
			r.Delete("/", clientHandler.DeleteClient)

			r.Route("/account", func(r chi.Router) {
				r.Post("/", accountHandler.AddAccountToClient)
				r.Get("/", accountHandler.GetAllAccountsFromClient)
				r.Get("/{accountid}", accountHandler.GetAccountByID)
				r.Put("/{accountid}", accountHandler.EditAccount)
				r.Delete("/{accountid}", accountHandler.DeleteAccount)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
