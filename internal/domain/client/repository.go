package client

import (
	"context"

	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type ListFilter struct {
	Query  string
	Status string
}

type Repository interface {
	CreateClient(ctx context.Context, c *models.Client) error
	GetClient(ctx context.Context, id string) (*models.Client, error)
	UpdateClient(ctx context.Context, c *models.Client) error
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context, f ListFilter) ([]models.Client, error)

	// SaveClientService e SaveAttendance são upserts pelo id.
	SaveClientService(ctx context.Context, s *models.ClientService) error
	GetClientService(ctx context.Context, id string) (*models.ClientService, error)
	ListClientServices(ctx context.Context, clientID string) ([]models.ClientService, error)

	SaveAttendance(ctx context.Context, a *models.ClientAttendance) error
	ListAttendance(ctx context.Context, clientID string) ([]models.ClientAttendance, error)
	ListAllAttendance(ctx context.Context) ([]models.ClientAttendance, error)
}
