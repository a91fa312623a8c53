package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/clientbook/clientbook/internal/domain"
	"github.com/clientbook/clientbook/internal/store"
)

// MockClientService is a mock implementation of service.ClientService.
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) GetAllClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	clients, _ := args.Get(0).([]domain.Client)
	return clients, args.Error(1)
}

func (m *MockClientService) GetClientByID(ctx context.Context, idText string) (*domain.Client, error) {
	args := m.Called(ctx, idText)
	client, _ := args.Get(0).(*domain.Client)
	return client, args.Error(1)
}

func (m *MockClientService) AddClient(ctx context.Context, params store.ClientParams) (*domain.Client, error) {
	args := m.Called(ctx, params)
	client, _ := args.Get(0).(*domain.Client)
	return client, args.Error(1)
}

func (m *MockClientService) EditClient(ctx context.Context, idText string, params store.ClientParams) (*domain.Client, error) {
	args := m.Called(ctx, idText, params)
	client, _ := args.Get(0).(*domain.Client)
	return client, args.Error(1)
}

func (m *MockClientService) DeleteClient(ctx context.Context, idText string) error {
	args := m.Called(ctx, idText)
	return args.Error(0)
}

// MockAccountService is a mock implementation of service.AccountService.
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAllAccountsFromClient(ctx context.Context, clientIDText, lessThanText, greaterThanText string) ([]domain.Account, error) {
	args := m.Called(ctx, clientIDText, lessThanText, greaterThanText)
	accounts, _ := args.Get(0).([]domain.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, clientIDText, accountIDText string) (*domain.Account, error) {
	args := m.Called(ctx, clientIDText, accountIDText)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *MockAccountService) AddAccount(ctx context.Context, params store.AccountParams) (*domain.Account, error) {
	args := m.Called(ctx, params)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *MockAccountService) EditAccount(ctx context.Context, clientIDText, accountIDText string, params store.AccountParams) (*domain.Account, error) {
	args := m.Called(ctx, clientIDText, accountIDText, params)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, clientIDText, accountIDText string) error {
	args := m.Called(ctx, clientIDText, accountIDText)
	return args.Error(0)
}
