package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clientbook/clientbook/internal/api/shared"
	"github.com/clientbook/clientbook/internal/service"
	"github.com/clientbook/clientbook/internal/store"
)

// Query parameter names for balance filtering, matching the public API.
const (
	amountLessThanParam    = "amountLessThan"
	amountGreaterThanParam = "amountGreaterThan"
)

// AccountHandler handles account-related HTTP requests. All account routes
// are nested under a client path segment.
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
// If logger is nil, a default logger will be used.
func NewAccountHandler(accountService service.AccountService, logger *slog.Logger) *AccountHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountHandler{
		accountService: accountService,
		logger:         logger.With(slog.String("component", "account_handler")),
	}
}

// GetAllAccountsFromClient handles GET /client/{clientid}/account requests.
// Optional amountLessThan/amountGreaterThan query parameters bound the
// balance; an absent parameter arrives as the empty string.
func (h *AccountHandler) GetAllAccountsFromClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientid")
	lessThan := r.URL.Query().Get(amountLessThanParam)
	greaterThan := r.URL.Query().Get(amountGreaterThanParam)

	accounts, err := h.accountService.GetAllAccountsFromClient(r.Context(), clientID, lessThan, greaterThan)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accounts)
}

// GetAccountByID handles GET /client/{clientid}/account/{accountid} requests.
func (h *AccountHandler) GetAccountByID(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientid")
	accountID := chi.URLParam(r, "accountid")

	account, err := h.accountService.GetAccountByID(r.Context(), clientID, accountID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, account)
}

// AddAccountToClient handles POST /client/{clientid}/account requests.
// The owning client id comes from the request body, matching the service
// contract for account creation.
func (h *AccountHandler) AddAccountToClient(w http.ResponseWriter, r *http.Request) {
	var params store.AccountParams
	if err := shared.DecodeJSON(r, &params); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := h.accountService.AddAccount(r.Context(), params)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, account)
}

// EditAccount handles PUT /client/{clientid}/account/{accountid} requests.
func (h *AccountHandler) EditAccount(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientid")
	accountID := chi.URLParam(r, "accountid")

	var params store.AccountParams
	if err := shared.DecodeJSON(r, &params); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := h.accountService.EditAccount(r.Context(), clientID, accountID, params)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, account)
}

// DeleteAccount handles DELETE /client/{clientid}/account/{accountid} requests.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientid")
	accountID := chi.URLParam(r, "accountid")

	if err := h.accountService.DeleteAccount(r.Context(), clientID, accountID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
