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

// ClientService provides client-related operations. Identifiers arrive as the
// raw strings extracted from the request path; the service owns parsing them.
type ClientService interface {
	// GetAllClients retrieves every client.
	GetAllClients(ctx context.Context) ([]domain.Client, error)

	// GetClientByID retrieves a single client. An absent client is returned
	// as (nil, nil) at this layer; callers needing existence enforcement
	// perform it explicitly.
	GetClientByID(ctx context.Context, idText string) (*domain.Client, error)

	// AddClient validates and persists a new client.
	AddClient(ctx context.Context, params store.ClientParams) (*domain.Client, error)

	// EditClient validates and performs a full-field replace of an existing
	// client, preserving its identity.
	EditClient(ctx context.Context, idText string, params store.ClientParams) (*domain.Client, error)

	// DeleteClient removes a client. Owned accounts go with it.
	DeleteClient(ctx context.Context, idText string) error
}

// clientServiceImpl implements the ClientService interface.
type clientServiceImpl struct {
	clients store.ClientStore
	logger  *slog.Logger
}

// NewClientService creates a new ClientService backed by the given store.
// Panics if clients is nil. If logger is nil, a default logger is used.
func NewClientService(clients store.ClientStore, logger *slog.Logger) ClientService {
	if clients == nil {
		panic("clients store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &clientServiceImpl{
		clients: clients,
		logger:  logger.With(slog.String("component", "client_service")),
	}
}

// parseID parses a caller-supplied id string, producing the user-facing
// bad-parameter error when it is not an integer.
func parseID(idText string) (int, error) {
	id, err := strconv.Atoi(idText)
	if err != nil {
		return 0, NewBadParameterError(
			fmt.Sprintf("%s was passed in by the user as the id, but it is not an int", idText))
	}
	return id, nil
}

// GetAllClients implements ClientService.GetAllClients.
func (s *clientServiceImpl) GetAllClients(ctx context.Context) ([]domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	clients, err := s.clients.ListAll(ctx)
	if err != nil {
		log.Error("failed to list clients", slog.String("error", err.Error()))
		return nil, NewDatabaseFailureError(err)
	}

	return clients, nil
}

// GetClientByID implements ClientService.GetClientByID.
func (s *clientServiceImpl) GetClientByID(ctx context.Context, idText string) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := parseID(idText)
	if err != nil {
		return nil, err
	}

	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		// Absence is not an error at this layer.
		if errors.Is(err, store.ErrClientNotFound) {
			return nil, nil
		}
		log.Error("failed to get client",
			slog.Int("client_id", id),
			slog.String("error", err.Error()))
		return nil, NewDatabaseFailureError(err)
	}

	return client, nil
}

// AddClient implements ClientService.AddClient.
func (s *clientServiceImpl) AddClient(ctx context.Context, params store.ClientParams) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(params.Name) == "" {
		return nil, NewBadParameterError("name cannot be blank")
	}

	client, err := s.clients.Create(ctx, params)
	if err != nil {
		log.Error("failed to add client", slog.String("error", err.Error()))
		return nil, NewDatabaseFailureError(err)
	}

	return client, nil
}

// EditClient implements ClientService.EditClient.
func (s *clientServiceImpl) EditClient(ctx context.Context, idText string, params store.ClientParams) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := parseID(idText)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Name) == "" {
		return nil, NewBadParameterError("name cannot be blank")
	}

	client, err := s.clients.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			return nil, NewClientNotFoundError(
				fmt.Sprintf("Client with id %d was not found", id))
		}
		log.Error("failed to edit client",
			slog.Int("client_id", id),
			slog.String("error", err.Error()))
		return nil, NewDatabaseFailureError(err)
	}

	return client, nil
}

// DeleteClient implements ClientService.DeleteClient.
func (s *clientServiceImpl) DeleteClient(ctx context.Context, idText string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := parseID(idText)
	if err != nil {
		return err
	}

	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			return NewClientNotFoundError(
				fmt.Sprintf("Client with id %d was not found", id))
		}
		log.Error("failed to delete client",
			slog.Int("client_id", id),
			slog.String("error", err.Error()))
		return NewDatabaseFailureError(err)
	}

	return nil
}
