package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/clientbook/clientbook/internal/domain"
	"github.com/clientbook/clientbook/internal/store"
)

// MockClientStore is a mock implementation of store.ClientStore.
type MockClientStore struct {
	mock.Mock
}

func (m *MockClientStore) ListAll(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	clients, _ := args.Get(0).([]domain.Client)
	return clients, args.Error(1)
}

func (m *MockClientStore) GetByID(ctx context.Context, id int) (*domain.Client, error) {
	args := m.Called(ctx, id)
	client, _ := args.Get(0).(*domain.Client)
	return client, args.Error(1)
}

func (m *MockClientStore) Create(ctx context.Context, params store.ClientParams) (*domain.Client, error) {
	args := m.Called(ctx, params)
	client, _ := args.Get(0).(*domain.Client)
	return client, args.Error(1)
}

func (m *MockClientStore) Update(ctx context.Context, id int, params store.ClientParams) (*domain.Client, error) {
	args := m.Called(ctx, id, params)
	client, _ := args.Get(0).(*domain.Client)
	return client, args.Error(1)
}

func (m *MockClientStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAccountStore is a mock implementation of store.AccountStore.
type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) ListByClient(ctx context.Context, clientID int) ([]domain.Account, error) {
	args := m.Called(ctx, clientID)
	accounts, _ := args.Get(0).([]domain.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountStore) ListByClientBetween(ctx context.Context, clientID, lessThan, greaterThan int) ([]domain.Account, error) {
	args := m.Called(ctx, clientID, lessThan, greaterThan)
	accounts, _ := args.Get(0).([]domain.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountStore) ListByClientLessThan(ctx context.Context, clientID, lessThan int) ([]domain.Account, error) {
	args := m.Called(ctx, clientID, lessThan)
	accounts, _ := args.Get(0).([]domain.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountStore) ListByClientGreaterThan(ctx context.Context, clientID, greaterThan int) ([]domain.Account, error) {
	args := m.Called(ctx, clientID, greaterThan)
	accounts, _ := args.Get(0).([]domain.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountStore) GetByID(ctx context.Context, clientID, accountID int) (*domain.Account, error) {
	args := m.Called(ctx, clientID, accountID)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *MockAccountStore) Create(ctx context.Context, params store.AccountParams) (*domain.Account, error) {
	args := m.Called(ctx, params)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *MockAccountStore) Update(ctx context.Context, clientID, accountID int, params store.AccountParams) (*domain.Account, error) {
	args := m.Called(ctx, clientID, accountID, params)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *MockAccountStore) Delete(ctx context.Context, clientID, accountID int) error {
	args := m.Called(ctx, clientID, accountID)
	return args.Error(0)
}
