package usecase

import (
	"context"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/promotion"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/promotion/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/dateparse"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// Create validates the date window and persists a new promotion.
func (uc *implUseCase) Create(ctx context.Context, input promotion.CreatePromotionInput) (promotion.CreatePromotionOutput, error) {
	if !validDateRange(input.StartDate, input.EndDate) {
		return promotion.CreatePromotionOutput{}, promotion.ErrInvalidDateRange
	}

	p, err := uc.repo.CreatePromotion(ctx, repo.CreatePromotionOptions{
		Title:       input.Title,
		Description: input.Description,
		Discount:    input.Discount,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsActive:    input.IsActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreatePromotion: %v", err)
		return promotion.CreatePromotionOutput{}, err
	}
	return promotion.CreatePromotionOutput{Promotion: p}, nil
}

// List returns a paginated list of promotions. The page is clamped against
// the counted total inside the repository.
func (uc *implUseCase) List(ctx context.Context, input promotion.ListPromotionsInput) (promotion.ListPromotionsOutput, error) {
	page, limit := paging.Normalize(input.Page, input.Limit)

	promotions, total, err := uc.repo.ListPromotions(ctx, repo.ListPromotionsOptions{
		IsActive: input.IsActive,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListPromotions: %v", err)
		return promotion.ListPromotionsOutput{}, err
	}

	p := paging.New(page, limit, total)
	return promotion.ListPromotionsOutput{
		Promotions: promotions,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
	}, nil
}

// Detail retrieves a single promotion by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (promotion.DetailPromotionOutput, error) {
	p, err := uc.repo.GetOnePromotion(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOnePromotion: %v", err)
		return promotion.DetailPromotionOutput{}, err
	}
	if p.ID == "" {
		return promotion.DetailPromotionOutput{}, promotion.ErrPromotionNotFound
	}
	return promotion.DetailPromotionOutput{Promotion: p}, nil
}

// Update modifies an existing promotion (partial update).
func (uc *implUseCase) Update(ctx context.Context, input promotion.UpdatePromotionInput) (promotion.UpdatePromotionOutput, error) {
	existing, err := uc.repo.GetOnePromotion(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOnePromotion: %v", err)
		return promotion.UpdatePromotionOutput{}, err
	}
	if existing.ID == "" {
		return promotion.UpdatePromotionOutput{}, promotion.ErrPromotionNotFound
	}

	startDate := coalesce(input.StartDate, existing.StartDate)
	endDate := coalesce(input.EndDate, existing.EndDate)
	if !validDateRange(startDate, endDate) {
		return promotion.UpdatePromotionOutput{}, promotion.ErrInvalidDateRange
	}

	isActive := existing.IsActive
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	p, err := uc.repo.UpdatePromotion(ctx, repo.UpdatePromotionOptions{
		ID:          input.ID,
		Title:       coalesce(input.Title, existing.Title),
		Description: coalesce(input.Description, existing.Description),
		Discount:    coalesce(input.Discount, existing.Discount),
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    isActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdatePromotion: %v", err)
		return promotion.UpdatePromotionOutput{}, err
	}
	return promotion.UpdatePromotionOutput{Promotion: p}, nil
}

// Delete removes a promotion by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOnePromotion(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOnePromotion: %v", err)
		return err
	}
	if existing.ID == "" {
		return promotion.ErrPromotionNotFound
	}
	if err := uc.repo.DeletePromotion(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeletePromotion: %v", err)
		return err
	}
	return nil
}

// validDateRange requires both dates well-formed and start <= end. Past
// campaigns can still be entered for record keeping.
func validDateRange(start, end string) bool {
	s, err := time.Parse(dateparse.DateLayout, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(dateparse.DateLayout, end)
	if err != nil {
		return false
	}
	return !e.Before(s)
}

func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
