package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/clientbook/clientbook/internal/domain"
	"github.com/clientbook/clientbook/internal/platform/logger"
	"github.com/clientbook/clientbook/internal/store"
)

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

const accountColumns = "id, name, balance, client_id"

// queryAccounts runs a SELECT returning account rows and scans them.
func (s *PostgresAccountStore) queryAccounts(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query accounts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Balance, &a.ClientID); err != nil {
			log.Error("failed to scan account row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return accounts, nil
}

// ListByClient implements store.AccountStore.ListByClient.
func (s *PostgresAccountStore) ListByClient(ctx context.Context, clientID int) ([]domain.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts
		WHERE client_id = $1
		ORDER BY id
	`, accountColumns)
	return s.queryAccounts(ctx, query, clientID)
}

// ListByClientBetween implements store.AccountStore.ListByClientBetween.
// Both bounds are inclusive.
func (s *PostgresAccountStore) ListByClientBetween(ctx context.Context, clientID, lessThan, greaterThan int) ([]domain.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts
		WHERE client_id = $1 AND balance <= $2 AND balance >= $3
		ORDER BY id
	`, accountColumns)
	return s.queryAccounts(ctx, query, clientID, lessThan, greaterThan)
}

// ListByClientLessThan implements store.AccountStore.ListByClientLessThan.
func (s *PostgresAccountStore) ListByClientLessThan(ctx context.Context, clientID, lessThan int) ([]domain.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts
		WHERE client_id = $1 AND balance <= $2
		ORDER BY id
	`, accountColumns)
	return s.queryAccounts(ctx, query, clientID, lessThan)
}

// ListByClientGreaterThan implements store.AccountStore.ListByClientGreaterThan.
func (s *PostgresAccountStore) ListByClientGreaterThan(ctx context.Context, clientID, greaterThan int) ([]domain.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts
		WHERE client_id = $1 AND balance >= $2
		ORDER BY id
	`, accountColumns)
	return s.queryAccounts(ctx, query, clientID, greaterThan)
}

// GetByID implements store.AccountStore.GetByID.
// Returns store.ErrAccountNotFound if no such account belongs to the client.
func (s *PostgresAccountStore) GetByID(ctx context.Context, clientID, accountID int) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, balance, client_id
		FROM accounts
		WHERE client_id = $1 AND id = $2
	`
	var a domain.Account
	err := s.db.QueryRowContext(ctx, query, clientID, accountID).
		Scan(&a.ID, &a.Name, &a.Balance, &a.ClientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account",
			slog.Int("client_id", clientID),
			slog.Int("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &a, nil
}

// Create implements store.AccountStore.Create.
func (s *PostgresAccountStore) Create(ctx context.Context, params store.AccountParams) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO accounts (name, balance, client_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, balance, client_id
	`
	var a domain.Account
	err := s.db.QueryRowContext(ctx, query, params.Name, params.Balance, params.ClientID).
		Scan(&a.ID, &a.Name, &a.Balance, &a.ClientID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("account creation references missing client",
				slog.Int("client_id", params.ClientID),
				slog.String("error", err.Error()))
		} else {
			log.Error("failed to create account", slog.String("error", err.Error()))
		}
		return nil, MapError(err)
	}

	log.Info("account created",
		slog.Int("account_id", a.ID),
		slog.Int("client_id", a.ClientID))
	return &a, nil
}

// Update implements store.AccountStore.Update.
// The owning client is never changed; client_id is part of the WHERE clause.
// Returns store.ErrAccountNotFound if no such account belongs to the client.
func (s *PostgresAccountStore) Update(ctx context.Context, clientID, accountID int, params store.AccountParams) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE accounts
		SET name = $3, balance = $4
		WHERE client_id = $1 AND id = $2
		RETURNING id, name, balance, client_id
	`
	var a domain.Account
	err := s.db.QueryRowContext(ctx, query, clientID, accountID, params.Name, params.Balance).
		Scan(&a.ID, &a.Name, &a.Balance, &a.ClientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to update account",
			slog.Int("client_id", clientID),
			slog.Int("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("account updated",
		slog.Int("account_id", a.ID),
		slog.Int("client_id", a.ClientID))
	return &a, nil
}

// Delete implements store.AccountStore.Delete.
// Returns store.ErrAccountNotFound if no such account belongs to the client.
func (s *PostgresAccountStore) Delete(ctx context.Context, clientID, accountID int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM accounts
		WHERE client_id = $1 AND id = $2
	`
	result, err := s.db.ExecContext(ctx, query, clientID, accountID)
	if err != nil {
		log.Error("failed to delete account",
			slog.Int("client_id", clientID),
			slog.Int("account_id", accountID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAccountNotFound); err != nil {
		return err
	}

	log.Info("account deleted",
		slog.Int("account_id", accountID),
		slog.Int("client_id", clientID))
	return nil
}
