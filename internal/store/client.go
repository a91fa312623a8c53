package store

import (
	"context"

	"github.com/clientbook/clientbook/internal/domain"
)

// ClientParams carries the caller-supplied fields for creating or fully
// replacing a client. The ID is always store-assigned.
type ClientParams struct {
	Name         string `json:"name"`
	AnnualIncome int    `json:"annualIncome"`
}

// ClientStore defines the interface for client data persistence.
type ClientStore interface {
	// ListAll retrieves every client. Order is whatever the store returns.
	ListAll(ctx context.Context) ([]domain.Client, error)

	// GetByID retrieves a client by its ID.
	// Returns ErrClientNotFound if the client does not exist.
	GetByID(ctx context.Context, id int) (*domain.Client, error)

	// Create saves a new client and returns it with the assigned ID.
	Create(ctx context.Context, params ClientParams) (*domain.Client, error)

	// Update performs a full-field replace of the client with the given ID
	// and returns the updated client.
	// Returns ErrClientNotFound if the client does not exist.
	Update(ctx context.Context, id int, params ClientParams) (*domain.Client, error)

	// Delete removes the client with the given ID. Accounts owned by the
	// client are removed with it (schema-level cascade).
	Delete(ctx context.Context, id int) error
}
