package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clientbook/clientbook/internal/api/shared"
	"github.com/clientbook/clientbook/internal/service"
	"github.com/clientbook/clientbook/internal/store"
)

// ClientHandler handles client-related HTTP requests.
type ClientHandler struct {
	clientService service.ClientService
	logger        *slog.Logger
}

// NewClientHandler creates a new ClientHandler.
// If logger is nil, a default logger will be used.
func NewClientHandler(clientService service.ClientService, logger *slog.Logger) *ClientHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ClientHandler{
		clientService: clientService,
		logger:        logger.With(slog.String("component", "client_handler")),
	}
}

// respondServiceError maps a service error to its status code and surfaces
// the service message verbatim in the response body.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), err.Error())
}

// GetAllClients handles GET /client requests.
func (h *ClientHandler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.GetAllClients(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, clients)
}

// GetClientByID handles GET /client/{clientid} requests.
// An absent client is serialized as a JSON null with status 200; the service
// treats absence as an empty result rather than an error here.
func (h *ClientHandler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientid")

	client, err := h.clientService.GetClientByID(r.Context(), clientID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, client)
}

// AddClient handles POST /client requests.
func (h *ClientHandler) AddClient(w http.ResponseWriter, r *http.Request) {
	var params store.ClientParams
	if err := shared.DecodeJSON(r, &params); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	client, err := h.clientService.AddClient(r.Context(), params)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, client)
}

// EditClient handles PUT /client/{clientid} requests.
func (h *ClientHandler) EditClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientid")

	var params store.ClientParams
	if err := shared.DecodeJSON(r, &params); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	client, err := h.clientService.EditClient(r.Context(), clientID, params)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, client)
}

// DeleteClient handles DELETE /client/{clientid} requests.
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientid")

	if err := h.clientService.DeleteClient(r.Context(), clientID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
