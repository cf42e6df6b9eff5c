package siteclient

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/apiclient"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mutate"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// BookingsQuery is the admin booking list query.
type BookingsQuery = ListQuery[BookingListParams, BookingPage]

// Bookings creates the booking list query and schedules the initial fetch.
func (c *Client) Bookings(ctx context.Context, initial BookingListParams) *BookingsQuery {
	q := newListQuery(c.debounce, c.notifier, c.fetchBookings)
	q.SetParams(ctx, initial)
	return q
}

func (c *Client) fetchBookings(ctx context.Context, p BookingListParams) (BookingPage, error) {
	env, err := c.api.Get(ctx, "/api/bookings", bookingQuerySchema.params(map[string]any{
		"page":   p.Page,
		"limit":  p.Limit,
		"status": p.Status,
		"date":   p.Date,
		"search": p.Search,
	}))
	if err != nil {
		return BookingPage{}, err
	}
	items, pg, err := pageOf[Booking](env)
	if err != nil {
		return BookingPage{}, err
	}
	return BookingPage{Items: items, Pagination: pg}, nil
}

// BookingSubmit creates the public consultation-form mutator. The form shape
// is mapped to the backend booking schema before posting.
func (c *Client) BookingSubmit() *mutate.Mutator[BookingForm, Booking] {
	return mutate.New(func(ctx context.Context, form BookingForm) (Booking, error) {
		env, err := c.api.Post(ctx, "/api/bookings", form.toSchema())
		if err != nil {
			return Booking{}, err
		}
		return apiclient.Decode[Booking](env)
	}, mutate.WithNotifier(c.notifier))
}

// BookingSubmitOptions is the default feedback for the public form. The
// confirmation email itself is sent by the backend, best-effort.
func BookingSubmitOptions() mutate.Options {
	opts := mutate.DefaultOptions()
	opts.SuccessMessage = "Thank you! Our team will contact you within 24 hours. A confirmation email is on its way."
	opts.ErrorMessage = "We could not send your request. Please try again or call our hotline."
	return opts
}

// UpdateBooking returns the admin status/detail update mutator.
func (c *Client) UpdateBooking() *mutate.Mutator[UpdateBookingInput, Booking] {
	return mutate.New(func(ctx context.Context, in UpdateBookingInput) (Booking, error) {
		env, err := c.api.Put(ctx, "/api/bookings/"+in.ID, in.Input)
		if err != nil {
			return Booking{}, err
		}
		return apiclient.Decode[Booking](env)
	}, mutate.WithNotifier(c.notifier))
}

// DeleteBooking returns the admin delete mutator.
func (c *Client) DeleteBooking() *mutate.Mutator[string, struct{}] {
	return mutate.New(func(ctx context.Context, id string) (struct{}, error) {
		_, err := c.api.Delete(ctx, "/api/bookings/"+id)
		return struct{}{}, err
	}, mutate.WithNotifier(c.notifier))
}

// BookingInput is the admin-side booking update payload.
type BookingInput struct {
	CustomerName     string `json:"customerName,omitempty"`
	Phone            string `json:"phone,omitempty"`
	ConsultationDate string `json:"consultationDate,omitempty"`
	ConsultationTime string `json:"consultationTime,omitempty"`
	Requirements     string `json:"requirements,omitempty"`
	Status           string `json:"status,omitempty"`
}

type UpdateBookingInput struct {
	ID    string
	Input BookingInput
}

// pageOf decodes a list envelope's items and pagination block.
func pageOf[I any](env *apiclient.Envelope) ([]I, paging.Pagination, error) {
	items, err := apiclient.Decode[[]I](env)
	if err != nil {
		return nil, paging.Pagination{}, err
	}
	var pg paging.Pagination
	if env.Pagination != nil {
		pg = *env.Pagination
	}
	return items, pg, nil
}
