package siteclient

import (
	"context"
	"sync"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/fetch"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/notify"
)

// ListQuery pairs a Fetcher with the current filter parameters of one list
// screen. SetParams records the new filters and feeds them to the Fetcher as
// dependency values, so a burst of filter changes collapses into one
// debounced request.
type ListQuery[P, T any] struct {
	mu     sync.Mutex
	params P
	f      *fetch.Fetcher[T]
}

func newListQuery[P, T any](debounce time.Duration, n notify.Notifier, fetchPage func(ctx context.Context, p P) (T, error)) *ListQuery[P, T] {
	q := &ListQuery[P, T]{}
	q.f = fetch.New(func(ctx context.Context) (T, error) {
		q.mu.Lock()
		p := q.params
		q.mu.Unlock()
		return fetchPage(ctx, p)
	}, fetch.WithDebounce(debounce), fetch.WithNotifier(n))
	return q
}

// SetParams updates the filters and schedules a debounced refetch when the
// values actually changed.
func (q *ListQuery[P, T]) SetParams(ctx context.Context, p P) {
	q.mu.Lock()
	q.params = p
	q.mu.Unlock()
	q.f.SetDeps(ctx, p)
}

// Params returns the current filter values.
func (q *ListQuery[P, T]) Params() P {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.params
}

// Execute runs the query immediately, bypassing the debounce.
func (q *ListQuery[P, T]) Execute(ctx context.Context) (T, error) {
	return q.f.Execute(ctx)
}

// Refetch re-runs the query with the current parameters.
func (q *ListQuery[P, T]) Refetch(ctx context.Context) (T, error) {
	return q.f.Refetch(ctx)
}

// State returns the current fetch state.
func (q *ListQuery[P, T]) State() fetch.State[T] {
	return q.f.State()
}

// Subscribe registers fn for state transitions.
func (q *ListQuery[P, T]) Subscribe(fn func(fetch.State[T])) {
	q.f.Subscribe(fn)
}

// Close releases the query when its owning view goes away.
func (q *ListQuery[P, T]) Close() {
	q.f.Close()
}
