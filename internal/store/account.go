package store

import (
	"context"

	"github.com/clientbook/clientbook/internal/domain"
)

// AccountParams carries the caller-supplied fields for creating or fully
// replacing an account. The ID is store-assigned; ClientID binds the account
// to its owner at creation and is immutable afterwards.
type AccountParams struct {
	Name     string `json:"name"`
	Balance  int    `json:"balance"`
	ClientID int    `json:"clientId"`
}

// AccountStore defines the interface for account data persistence.
// All queries are scoped to a single owning client.
type AccountStore interface {
	// ListByClient retrieves all accounts owned by the given client.
	ListByClient(ctx context.Context, clientID int) ([]domain.Account, error)

	// ListByClientBetween retrieves the client's accounts with
	// balance <= lessThan and balance >= greaterThan.
	ListByClientBetween(ctx context.Context, clientID, lessThan, greaterThan int) ([]domain.Account, error)

	// ListByClientLessThan retrieves the client's accounts with
	// balance <= lessThan.
	ListByClientLessThan(ctx context.Context, clientID, lessThan int) ([]domain.Account, error)

	// ListByClientGreaterThan retrieves the client's accounts with
	// balance >= greaterThan.
	ListByClientGreaterThan(ctx context.Context, clientID, greaterThan int) ([]domain.Account, error)

	// GetByID retrieves an account by the (clientID, accountID) pair.
	// Returns ErrAccountNotFound if no such account belongs to the client.
	GetByID(ctx context.Context, clientID, accountID int) (*domain.Account, error)

	// Create saves a new account and returns it with the assigned ID.
	Create(ctx context.Context, params AccountParams) (*domain.Account, error)

	// Update performs a full-field replace of the account identified by the
	// (clientID, accountID) pair and returns the updated account. The owning
	// client is never changed.
	// Returns ErrAccountNotFound if no such account belongs to the client.
	Update(ctx context.Context, clientID, accountID int, params AccountParams) (*domain.Account, error)

	// Delete removes the account identified by the (clientID, accountID) pair.
	Delete(ctx context.Context, clientID, accountID int) error
}
