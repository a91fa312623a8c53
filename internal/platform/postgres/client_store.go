package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/clientbook/clientbook/internal/domain"
	"github.com/clientbook/clientbook/internal/platform/logger"
	"github.com/clientbook/clientbook/internal/store"
)

// PostgresClientStore implements the store.ClientStore interface
// using a PostgreSQL database as the storage backend.
type PostgresClientStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresClientStore creates a new PostgreSQL implementation of the
// ClientStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresClientStore(db store.DBTX, logger *slog.Logger) *PostgresClientStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresClientStore{
		db:     db,
		logger: logger.With(slog.String("component", "client_store")),
	}
}

// Ensure PostgresClientStore implements store.ClientStore interface
var _ store.ClientStore = (*PostgresClientStore)(nil)

// ListAll implements store.ClientStore.ListAll.
func (s *PostgresClientStore) ListAll(ctx context.Context) ([]domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, annual_income
		FROM clients
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list clients", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.AnnualIncome); err != nil {
			log.Error("failed to scan client row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return clients, nil
}

// GetByID implements store.ClientStore.GetByID.
// Returns store.ErrClientNotFound if the client does not exist.
func (s *PostgresClientStore) GetByID(ctx context.Context, id int) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, annual_income
		FROM clients
		WHERE id = $1
	`
	var c domain.Client
	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.AnnualIncome)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrClientNotFound
		}
		log.Error("failed to get client",
			slog.Int("client_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &c, nil
}

// Create implements store.ClientStore.Create.
func (s *PostgresClientStore) Create(ctx context.Context, params store.ClientParams) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO clients (name, annual_income)
		VALUES ($1, $2)
		RETURNING id, name, annual_income
	`
	var c domain.Client
	err := s.db.QueryRowContext(ctx, query, params.Name, params.AnnualIncome).
		Scan(&c.ID, &c.Name, &c.AnnualIncome)
	if err != nil {
		log.Error("failed to create client", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("client created", slog.Int("client_id", c.ID))
	return &c, nil
}

// Update implements store.ClientStore.Update.
// Returns store.ErrClientNotFound if the client does not exist.
func (s *PostgresClientStore) Update(ctx context.Context, id int, params store.ClientParams) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE clients
		SET name = $2, annual_income = $3
		WHERE id = $1
		RETURNING id, name, annual_income
	`
	var c domain.Client
	err := s.db.QueryRowContext(ctx, query, id, params.Name, params.AnnualIncome).
		Scan(&c.ID, &c.Name, &c.AnnualIncome)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrClientNotFound
		}
		log.Error("failed to update client",
			slog.Int("client_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("client updated", slog.Int("client_id", c.ID))
	return &c, nil
}

// Delete implements store.ClientStore.Delete.
// Accounts owned by the client are removed by the schema-level cascade.
// Returns store.ErrClientNotFound if the client does not exist.
func (s *PostgresClientStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM clients
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete client",
			slog.Int("client_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrClientNotFound); err != nil {
		return err
	}

	log.Info("client deleted", slog.Int("client_id", id))
	return nil
}
