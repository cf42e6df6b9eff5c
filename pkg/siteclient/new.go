// Package siteclient binds each site resource (bookings, services, gallery,
// reviews, promotions, newsletter) to the generic fetch/mutate runtime. A
// view layer talks to these facades only; endpoint paths, parameter
// translation, and payload mapping all live here.
package siteclient

import (
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/apiclient"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/fetch"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/notify"
)

// Client is the facade root. One Client per composition root; every query and
// mutator it hands out shares the notifier and the underlying API client.
type Client struct {
	api        *apiclient.Client
	notifier   notify.Notifier
	promotions PromotionSource
	debounce   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithNotifier sets the toast surface shared by all facades.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithPromotionSource injects an alternative promotions data source
// (demo/test fixtures). Selected by the composition root, never by ambient
// global state.
func WithPromotionSource(src PromotionSource) Option {
	return func(c *Client) { c.promotions = src }
}

// WithDebounce overrides the auto-fetch debounce for all queries.
func WithDebounce(d time.Duration) Option {
	return func(c *Client) { c.debounce = d }
}

// New creates a facade Client on top of api.
func New(api *apiclient.Client, opts ...Option) *Client {
	c := &Client{
		api:      api,
		notifier: notify.Nop{},
		debounce: fetch.DefaultDebounce,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.promotions == nil {
		c.promotions = &apiPromotionSource{c: c}
	}
	return c
}
