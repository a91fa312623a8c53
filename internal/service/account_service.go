package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/clientbook/clientbook/internal/domain"
	"github.com/clientbook/clientbook/internal/platform/logger"
	"github.com/clientbook/clientbook/internal/store"
)

// AccountService provides account-related operations. Path identifiers and
// filter parameters arrive as raw strings; an empty filter string means the
// parameter was not supplied.
type AccountService interface {
	// GetAllAccountsFromClient retrieves the client's accounts, optionally
	// filtered by balance bounds. Exactly one of four query variants runs
	// depending on which bounds are present.
	GetAllAccountsFromClient(ctx context.Context, clientIDText, lessThanText, greaterThanText string) ([]domain.Account, error)

	// GetAccountByID retrieves a single account scoped to its owning client.
	GetAccountByID(ctx context.Context, clientIDText, accountIDText string) (*domain.Account, error)

	// AddAccount validates and persists a new account.
	AddAccount(ctx context.Context, params store.AccountParams) (*domain.Account, error)

	// EditAccount validates identifiers, enforces existence, and performs a
	// full-field replace of the account. The owning client never changes.
	EditAccount(ctx context.Context, clientIDText, accountIDText string, params store.AccountParams) (*domain.Account, error)

	// DeleteAccount validates identifiers, enforces existence, and removes
	// the account.
	DeleteAccount(ctx context.Context, clientIDText, accountIDText string) error
}

// accountServiceImpl implements the AccountService interface.
type accountServiceImpl struct {
	clients  store.ClientStore
	accounts store.AccountStore
	logger   *slog.Logger
}

// NewAccountService creates a new AccountService backed by the given stores.
// The client store is needed for the existence gate that precedes every
// account query. Panics if either store is nil. If logger is nil, a default
// logger is used.
func NewAccountService(clients store.ClientStore, accounts store.AccountStore, logger *slog.Logger) AccountService {
	if clients == nil {
		panic("clients store cannot be nil")
	}
	if accounts == nil {
		panic("accounts store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &accountServiceImpl{
		clients:  clients,
		accounts: accounts,
		logger:   logger.With(slog.String("component", "account_service")),
	}
}

// requireClient parses the client id and verifies the client exists. This
// gate precedes every account operation that addresses accounts through a
// client, and runs before any filter parsing.
func (s *accountServiceImpl) requireClient(ctx context.Context, clientIDText string) (int, error) {
	clientID, err := parseID(clientIDText)
	if err != nil {
		return 0, err
	}

	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			return 0, NewClientNotFoundError(
				fmt.Sprintf("Client with id %d was not found", clientID))
		}
		return 0, NewDatabaseFailureError(err)
	}

	return clientID, nil
}

// requireAccount parses the account id and verifies the account exists for
// the given client. Runs only after the client gate has passed.
func (s *accountServiceImpl) requireAccount(ctx context.Context, clientID int, accountIDText string) (int, error) {
	accountID, err := parseID(accountIDText)
	if err != nil {
		return 0, err
	}

	if _, err := s.accounts.GetByID(ctx, clientID, accountID); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return 0, NewClientNotFoundError(
				fmt.Sprintf("Account with id %d was not found", accountID))
		}
		return 0, NewDatabaseFailureError(err)
	}

	return accountID, nil
}

// parseBound parses an optional balance bound. An empty string means the
// bound was not supplied. label names the parameter in the error message.
func parseBound(text, label string) (value int, present bool, err error) {
	if text == "" {
		return 0, false, nil
	}
	value, convErr := strconv.Atoi(text)
	if convErr != nil {
		return 0, false, NewBadParameterError(
			fmt.Sprintf("%s was passed in by the user as the %s value, but it is not an int", text, label))
	}
	return value, true, nil
}

// GetAllAccountsFromClient implements AccountService.GetAllAccountsFromClient.
func (s *accountServiceImpl) GetAllAccountsFromClient(ctx context.Context, clientIDText, lessThanText, greaterThanText string) ([]domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	clientID, err := s.requireClient(ctx, clientIDText)
	if err != nil {
		return nil, err
	}

	// lessThan is parsed before greaterThan; when both are malformed the
	// lessThan error surfaces.
	lessThan, hasLessThan, err := parseBound(lessThanText, "less than")
	if err != nil {
		return nil, err
	}
	greaterThan, hasGreaterThan, err := parseBound(greaterThanText, "greater than")
	if err != nil {
		return nil, err
	}

	var accounts []domain.Account
	switch {
	case hasLessThan && hasGreaterThan:
		accounts, err = s.accounts.ListByClientBetween(ctx, clientID, lessThan, greaterThan)
	case hasLessThan:
		accounts, err = s.accounts.ListByClientLessThan(ctx, clientID, lessThan)
	case hasGreaterThan:
		accounts, err = s.accounts.ListByClientGreaterThan(ctx, clientID, greaterThan)
	default:
		accounts, err = s.accounts.ListByClient(ctx, clientID)
	}
	if err != nil {
		log.Error("failed to list accounts",
			slog.Int("client_id", clientID),
			slog.String("error", err.Error()))
		return nil, NewDatabaseFailureError(err)
	}

	// An empty result reuses the not-found kind to signal "nothing to
	// return", distinct from the client-absence case above.
	if len(accounts) == 0 {
		return nil, NewClientNotFoundError("No Accounts found for client")
	}

	return accounts, nil
}

// GetAccountByID implements AccountService.GetAccountByID.
func (s *accountServiceImpl) GetAccountByID(ctx context.Context, clientIDText, accountIDText string) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	clientID, err := s.requireClient(ctx, clientIDText)
	if err != nil {
		return nil, err
	}

	accountID, err := s.requireAccount(ctx, clientID, accountIDText)
	if err != nil {
		return nil, err
	}

	// The existence check above and this fetch are two separate store calls;
	// a concurrent delete between them surfaces as a failure here. Accepted
	// race, no locking.
	account, err := s.accounts.GetByID(ctx, clientID, accountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, NewClientNotFoundError(
				fmt.Sprintf("Account with id %d was not found", accountID))
		}
		log.Error("failed to get account",
			slog.Int("client_id", clientID),
			slog.Int("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, NewDatabaseFailureError(err)
	}

	return account, nil
}

// AddAccount implements AccountService.AddAccount.
// The referenced client is not verified here; accounts can be created against
// a client id the caller never proved exists. The other account operations
// all gate on client existence.
func (s *accountServiceImpl) AddAccount(ctx context.Context, params store.AccountParams) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	blankName := strings.TrimSpace(params.Name) == ""
	negativeBalance := params.Balance < 0

	switch {
	case blankName && negativeBalance:
		return nil, NewBadParameterError("Account name cannot be blank and balance cannot be less than 0")
	case blankName:
		return nil, NewBadParameterError("Account name cannot be blank")
	case negativeBalance:
		return nil, NewBadParameterError("Account balance cannot be less than 0")
	}

	account, err := s.accounts.Create(ctx, params)
	if err != nil {
		log.Error("failed to add account",
			slog.Int("client_id", params.ClientID),
			slog.String("error", err.Error()))
		return nil, NewDatabaseFailureError(err)
	}

	return account, nil
}

// EditAccount implements AccountService.EditAccount.
func (s *accountServiceImpl) EditAccount(ctx context.Context, clientIDText, accountIDText string, params store.AccountParams) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	clientID, err := s.requireClient(ctx, clientIDText)
	if err != nil {
		return nil, err
	}

	accountID, err := s.requireAccount(ctx, clientID, accountIDText)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.Update(ctx, clientID, accountID, params)
	if err != nil {
		log.Error("failed to edit account",
			slog.Int("client_id", clientID),
			slog.Int("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, NewDatabaseFailureError(err)
	}

	return account, nil
}

// DeleteAccount implements AccountService.DeleteAccount.
func (s *accountServiceImpl) DeleteAccount(ctx context.Context, clientIDText, accountIDText string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	clientID, err := s.requireClient(ctx, clientIDText)
	if err != nil {
		return err
	}

	accountID, err := s.requireAccount(ctx, clientID, accountIDText)
	if err != nil {
		return err
	}

	if err := s.accounts.Delete(ctx, clientID, accountID); err != nil {
		log.Error("failed to delete account",
			slog.Int("client_id", clientID),
			slog.Int("account_id", accountID),
			slog.String("error", err.Error()))
		return NewDatabaseFailureError(err)
	}

	return nil
}
