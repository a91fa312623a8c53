package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientbook/clientbook/internal/domain"
	"github.com/clientbook/clientbook/internal/platform/postgres"
	"github.com/clientbook/clientbook/internal/store"
	"github.com/clientbook/clientbook/internal/testdb"
)

// seedClient creates a client to own the accounts under test.
func seedClient(t *testing.T, tx *sql.Tx, name string) *domain.Client {
	t.Helper()

	client, err := postgres.NewPostgresClientStore(tx, nil).
		Create(context.Background(), store.ClientParams{Name: name, AnnualIncome: 100})
	require.NoError(t, err)
	return client
}

func TestPostgresAccountStore(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()

	t.Run("create_and_get", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			client := seedClient(t, tx, "jim")
			accounts := postgres.NewPostgresAccountStore(tx, nil)

			created, err := accounts.Create(ctx, store.AccountParams{Name: "checking", Balance: 100, ClientID: client.ID})
			require.NoError(t, err)
			assert.NotZero(t, created.ID)
			assert.Equal(t, client.ID, created.ClientID)

			fetched, err := accounts.GetByID(ctx, client.ID, created.ID)
			require.NoError(t, err)
			assert.Equal(t, created, fetched)
		})
	})

	t.Run("create_for_missing_client_fails", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			accounts := postgres.NewPostgresAccountStore(tx, nil)

			_, err := accounts.Create(ctx, store.AccountParams{Name: "checking", Balance: 100, ClientID: 999999})
			require.Error(t, err)
			assert.ErrorContains(t, err, "foreign key violation")
		})
	})

	t.Run("balance_filters", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			client := seedClient(t, tx, "jim")
			accounts := postgres.NewPostgresAccountStore(tx, nil)

			low, err := accounts.Create(ctx, store.AccountParams{Name: "low", Balance: 10, ClientID: client.ID})
			require.NoError(t, err)
			mid, err := accounts.Create(ctx, store.AccountParams{Name: "mid", Balance: 50, ClientID: client.ID})
			require.NoError(t, err)
			high, err := accounts.Create(ctx, store.AccountParams{Name: "high", Balance: 100, ClientID: client.ID})
			require.NoError(t, err)

			all, err := accounts.ListByClient(ctx, client.ID)
			require.NoError(t, err)
			assert.Equal(t, []domain.Account{*low, *mid, *high}, all)

			// Bounds are inclusive on both ends.
			between, err := accounts.ListByClientBetween(ctx, client.ID, 50, 10)
			require.NoError(t, err)
			assert.Equal(t, []domain.Account{*low, *mid}, between)

			lessThan, err := accounts.ListByClientLessThan(ctx, client.ID, 50)
			require.NoError(t, err)
			assert.Equal(t, []domain.Account{*low, *mid}, lessThan)

			greaterThan, err := accounts.ListByClientGreaterThan(ctx, client.ID, 50)
			require.NoError(t, err)
			assert.Equal(t, []domain.Account{*mid, *high}, greaterThan)
		})
	})

	t.Run("accounts_scoped_to_owning_client", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			jim := seedClient(t, tx, "jim")
			bill := seedClient(t, tx, "bill")
			accounts := postgres.NewPostgresAccountStore(tx, nil)

			account, err := accounts.Create(ctx, store.AccountParams{Name: "checking", Balance: 100, ClientID: jim.ID})
			require.NoError(t, err)

			_, err = accounts.GetByID(ctx, bill.ID, account.ID)
			assert.ErrorIs(t, err, store.ErrAccountNotFound)

			billAccounts, err := accounts.ListByClient(ctx, bill.ID)
			require.NoError(t, err)
			assert.Empty(t, billAccounts)
		})
	})

	t.Run("update", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			client := seedClient(t, tx, "jim")
			accounts := postgres.NewPostgresAccountStore(tx, nil)

			created, err := accounts.Create(ctx, store.AccountParams{Name: "checking", Balance: 100, ClientID: client.ID})
			require.NoError(t, err)

			updated, err := accounts.Update(ctx, client.ID, created.ID,
				store.AccountParams{Name: "saving", Balance: 500})
			require.NoError(t, err)
			assert.Equal(t, created.ID, updated.ID)
			assert.Equal(t, "saving", updated.Name)
			assert.Equal(t, 500, updated.Balance)
			assert.Equal(t, client.ID, updated.ClientID)
		})
	})

	t.Run("update_wrong_client_is_not_found", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			jim := seedClient(t, tx, "jim")
			bill := seedClient(t, tx, "bill")
			accounts := postgres.NewPostgresAccountStore(tx, nil)

			account, err := accounts.Create(ctx, store.AccountParams{Name: "checking", Balance: 100, ClientID: jim.ID})
			require.NoError(t, err)

			_, err = accounts.Update(ctx, bill.ID, account.ID, store.AccountParams{Name: "x", Balance: 1})
			assert.ErrorIs(t, err, store.ErrAccountNotFound)
		})
	})

	t.Run("delete", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			client := seedClient(t, tx, "jim")
			accounts := postgres.NewPostgresAccountStore(tx, nil)

			created, err := accounts.Create(ctx, store.AccountParams{Name: "checking", Balance: 100, ClientID: client.ID})
			require.NoError(t, err)

			require.NoError(t, accounts.Delete(ctx, client.ID, created.ID))

			_, err = accounts.GetByID(ctx, client.ID, created.ID)
			assert.ErrorIs(t, err, store.ErrAccountNotFound)
		})
	})

	t.Run("delete_missing_account", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			client := seedClient(t, tx, "jim")
			accounts := postgres.NewPostgresAccountStore(tx, nil)

			assert.ErrorIs(t, accounts.Delete(ctx, client.ID, 999999), store.ErrAccountNotFound)
		})
	})
}
