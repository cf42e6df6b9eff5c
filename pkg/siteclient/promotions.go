package siteclient

import (
	"context"
)

// PromotionSource is the promotions data-source strategy. The default
// implementation talks to the API; demos and tests inject a fixture source
// through WithPromotionSource instead of flipping an ambient flag.
type PromotionSource interface {
	FetchPromotions(ctx context.Context, p PromotionListParams) ([]Promotion, error)
}

// PromotionsQuery is the promotion list query.
type PromotionsQuery = ListQuery[PromotionListParams, []Promotion]

// Promotions creates the promotion list query backed by the configured
// source.
func (c *Client) Promotions(ctx context.Context, initial PromotionListParams) *PromotionsQuery {
	q := newListQuery(c.debounce, c.notifier, c.promotions.FetchPromotions)
	q.SetParams(ctx, initial)
	return q
}

type apiPromotionSource struct {
	c *Client
}

func (s *apiPromotionSource) FetchPromotions(ctx context.Context, p PromotionListParams) ([]Promotion, error) {
	env, err := s.c.api.Get(ctx, "/api/promotions", promotionQuerySchema.params(map[string]any{
		"limit":  p.Limit,
		"active": p.Active,
	}))
	if err != nil {
		return nil, err
	}
	items, _, err := pageOf[Promotion](env)
	return items, err
}

// StaticPromotionSource serves a fixed slice. Useful for demos and tests.
type StaticPromotionSource []Promotion

func (s StaticPromotionSource) FetchPromotions(_ context.Context, p PromotionListParams) ([]Promotion, error) {
	out := make([]Promotion, 0, len(s))
	for _, promo := range s {
		if p.Active != nil && promo.IsActive != *p.Active {
			continue
		}
		out = append(out, promo)
		if p.Limit > 0 && len(out) >= p.Limit {
			break
		}
	}
	return out, nil
}
