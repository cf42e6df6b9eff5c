package siteclient

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/apiclient"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mutate"
)

// GalleriesQuery is the gallery list query.
type GalleriesQuery = ListQuery[GalleryListParams, GalleryPage]

// Galleries creates the gallery list query.
func (c *Client) Galleries(ctx context.Context, initial GalleryListParams) *GalleriesQuery {
	q := newListQuery(c.debounce, c.notifier, c.fetchGalleries)
	q.SetParams(ctx, initial)
	return q
}

func (c *Client) fetchGalleries(ctx context.Context, p GalleryListParams) (GalleryPage, error) {
	env, err := c.api.Get(ctx, "/api/gallery", galleryQuerySchema.params(map[string]any{
		"page":     p.Page,
		"limit":    p.Limit,
		"category": p.Category,
	}))
	if err != nil {
		return GalleryPage{}, err
	}
	items, pg, err := pageOf[GalleryImage](env)
	if err != nil {
		return GalleryPage{}, err
	}
	return GalleryPage{Items: items, Pagination: pg}, nil
}

// CreateGallery returns the admin create mutator.
func (c *Client) CreateGallery() *mutate.Mutator[GalleryInput, GalleryImage] {
	return mutate.New(func(ctx context.Context, in GalleryInput) (GalleryImage, error) {
		env, err := c.api.Post(ctx, "/api/admin/gallery", in)
		if err != nil {
			return GalleryImage{}, err
		}
		return apiclient.Decode[GalleryImage](env)
	}, mutate.WithNotifier(c.notifier))
}

// UpdateGallery returns the admin update mutator.
func (c *Client) UpdateGallery() *mutate.Mutator[UpdateGalleryInput, GalleryImage] {
	return mutate.New(func(ctx context.Context, in UpdateGalleryInput) (GalleryImage, error) {
		env, err := c.api.Put(ctx, "/api/admin/gallery/"+in.ID, in.Input)
		if err != nil {
			return GalleryImage{}, err
		}
		return apiclient.Decode[GalleryImage](env)
	}, mutate.WithNotifier(c.notifier))
}

// DeleteGallery returns the admin delete mutator.
func (c *Client) DeleteGallery() *mutate.Mutator[string, struct{}] {
	return mutate.New(func(ctx context.Context, id string) (struct{}, error) {
		_, err := c.api.Delete(ctx, "/api/admin/gallery/"+id)
		return struct{}{}, err
	}, mutate.WithNotifier(c.notifier))
}
