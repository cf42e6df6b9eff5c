package service

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateServiceInput) (CreateServiceOutput, error)
	List(ctx context.Context, input ListServicesInput) (ListServicesOutput, error)
	Detail(ctx context.Context, id string) (DetailServiceOutput, error)
	Update(ctx context.Context, input UpdateServiceInput) (UpdateServiceOutput, error)
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
}
