package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/repository"
)

// ClientService handles the client registry and their promotional app
// records.
type ClientService struct {
	clientRepo    *repository.ClientRepository
	clientAppRepo *repository.ClientAppRepository
}

// NewClientService creates a new ClientService with the provided repository dependencies.
func NewClientService(
	clientRepo *repository.ClientRepository,
	clientAppRepo *repository.ClientAppRepository,
) *ClientService {
	return &ClientService{
		clientRepo:    clientRepo,
		clientAppRepo: clientAppRepo,
	}
}

// GetClients lists clients, optionally restricted to those without an active
// assignment.
func (s *ClientService) GetClients(filter model.ClientFilter) ([]model.Client, error) {
	return s.clientRepo.GetClients(filter)
}

// RegisterClient creates a new client.
func (s *ClientService) RegisterClient(req request.CreateClientRequest) (model.Client, error) {
	client := model.Client{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.clientRepo.CreateClient(client); err != nil {
		return model.Client{}, err
	}

	return client, nil
}

// GetClientApps lists one client's app records.
func (s *ClientService) GetClientApps(clientID string) ([]model.ClientApp, error) {
	if _, err := s.clientRepo.GetClientOnID(clientID); err != nil {
		return nil, err
	}
	return s.clientAppRepo.GetClientAppsOnClientID(clientID)
}

// AddClientApp records a client's engagement with a promotional app.
func (s *ClientService) AddClientApp(req request.CreateClientAppRequest) (model.ClientApp, error) {
	if _, err := s.clientRepo.GetClientOnID(req.ClientID); err != nil {
		return model.ClientApp{}, err
	}

	now := time.Now().UTC()
	app := model.ClientApp{
		ID:        uuid.New().String(),
		ClientID:  req.ClientID,
		AppName:   req.AppName,
		Status:    req.Status,
		ProfitUS:  req.ProfitUS,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.clientAppRepo.CreateClientApp(app); err != nil {
		return model.ClientApp{}, err
	}

	return app, nil
}
