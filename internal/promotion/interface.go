package promotion

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreatePromotionInput) (CreatePromotionOutput, error)
	List(ctx context.Context, input ListPromotionsInput) (ListPromotionsOutput, error)
	Detail(ctx context.Context, id string) (DetailPromotionOutput, error)
	Update(ctx context.Context, input UpdatePromotionInput) (UpdatePromotionOutput, error)
	Delete(ctx context.Context, id string) error
}
