package siteclient

import (
	"context"
)

// ServicesQuery is the service catalog list query.
type ServicesQuery = ListQuery[ServiceListParams, ServicePage]

// Services creates the service list query. The boolean Active filter is
// translated to the backend's isActive string parameter by the query schema.
func (c *Client) Services(ctx context.Context, initial ServiceListParams) *ServicesQuery {
	q := newListQuery(c.debounce, c.notifier, c.fetchServices)
	q.SetParams(ctx, initial)
	return q
}

func (c *Client) fetchServices(ctx context.Context, p ServiceListParams) (ServicePage, error) {
	env, err := c.api.Get(ctx, "/api/services", serviceQuerySchema.params(map[string]any{
		"page":     p.Page,
		"limit":    p.Limit,
		"category": p.Category,
		"active":   p.Active,
	}))
	if err != nil {
		return ServicePage{}, err
	}
	items, pg, err := pageOf[Service](env)
	if err != nil {
		return ServicePage{}, err
	}
	return ServicePage{Items: items, Pagination: pg}, nil
}
