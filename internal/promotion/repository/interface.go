package repository

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/internal/promotion"
)

// Repository is the data store interface for the promotion domain.
type Repository interface {
	CreatePromotion(ctx context.Context, opt CreatePromotionOptions) (promotion.Promotion, error)
	GetOnePromotion(ctx context.Context, id string) (promotion.Promotion, error)
	ListPromotions(ctx context.Context, opt ListPromotionsOptions) ([]promotion.Promotion, int, error)
	UpdatePromotion(ctx context.Context, opt UpdatePromotionOptions) (promotion.Promotion, error)
	DeletePromotion(ctx context.Context, id string) error
}
