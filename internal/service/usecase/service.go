package usecase

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/internal/service"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/service/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// Create persists a new service. Names are unique within the catalog.
func (uc *implUseCase) Create(ctx context.Context, input service.CreateServiceInput) (service.CreateServiceOutput, error) {
	existing, err := uc.repo.GetOneService(ctx, repo.GetOneServiceOptions{Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneService: %v", err)
		return service.CreateServiceOutput{}, err
	}
	if existing.ID != "" {
		return service.CreateServiceOutput{}, service.ErrDuplicateName
	}

	s, err := uc.repo.CreateService(ctx, repo.CreateServiceOptions{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		PriceRange:  input.PriceRange,
		IsActive:    input.IsActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateService: %v", err)
		return service.CreateServiceOutput{}, err
	}
	return service.CreateServiceOutput{Service: s}, nil
}

// List returns a paginated list of services. The page is clamped against the
// counted total inside the repository.
func (uc *implUseCase) List(ctx context.Context, input service.ListServicesInput) (service.ListServicesOutput, error) {
	page, limit := paging.Normalize(input.Page, input.Limit)

	services, total, err := uc.repo.ListServices(ctx, repo.ListServicesOptions{
		Category: input.Category,
		IsActive: input.IsActive,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListServices: %v", err)
		return service.ListServicesOutput{}, err
	}

	p := paging.New(page, limit, total)
	return service.ListServicesOutput{
		Services: services,
		Total:    total,
		Page:     p.Page,
		Limit:    p.Limit,
	}, nil
}

// Detail retrieves a single service by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (service.DetailServiceOutput, error) {
	s, err := uc.repo.GetOneService(ctx, repo.GetOneServiceOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneService: %v", err)
		return service.DetailServiceOutput{}, err
	}
	if s.ID == "" {
		return service.DetailServiceOutput{}, service.ErrServiceNotFound
	}
	return service.DetailServiceOutput{Service: s}, nil
}

// Update modifies an existing service (partial update).
func (uc *implUseCase) Update(ctx context.Context, input service.UpdateServiceInput) (service.UpdateServiceOutput, error) {
	existing, err := uc.repo.GetOneService(ctx, repo.GetOneServiceOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneService: %v", err)
		return service.UpdateServiceOutput{}, err
	}
	if existing.ID == "" {
		return service.UpdateServiceOutput{}, service.ErrServiceNotFound
	}

	isActive := existing.IsActive
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	s, err := uc.repo.UpdateService(ctx, repo.UpdateServiceOptions{
		ID:          input.ID,
		Name:        coalesce(input.Name, existing.Name),
		Description: coalesce(input.Description, existing.Description),
		Category:    coalesce(input.Category, existing.Category),
		PriceRange:  coalesce(input.PriceRange, existing.PriceRange),
		IsActive:    isActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateService: %v", err)
		return service.UpdateServiceOutput{}, err
	}
	return service.UpdateServiceOutput{Service: s}, nil
}

// Delete removes a service by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneService(ctx, repo.GetOneServiceOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneService: %v", err)
		return err
	}
	if existing.ID == "" {
		return service.ErrServiceNotFound
	}
	if err := uc.repo.DeleteService(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteService: %v", err)
		return err
	}
	return nil
}

// CountAll returns the catalog size (dashboard).
func (uc *implUseCase) CountAll(ctx context.Context) (int, error) {
	return uc.repo.CountServices(ctx)
}

func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
