package repository

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/internal/service"
)

// Repository is the data store interface for the service domain.
type Repository interface {
	CreateService(ctx context.Context, opt CreateServiceOptions) (service.Service, error)
	GetOneService(ctx context.Context, opt GetOneServiceOptions) (service.Service, error)
	ListServices(ctx context.Context, opt ListServicesOptions) ([]service.Service, int, error)
	UpdateService(ctx context.Context, opt UpdateServiceOptions) (service.Service, error)
	DeleteService(ctx context.Context, id string) error
	CountServices(ctx context.Context) (int, error)
}
