// Package mutate manages the lifecycle of one write operation and its user
// feedback: loading/error state, success and error toasts, and error
// propagation back to the caller so call sites can layer their own handling
// on top.
package mutate

import (
	"context"
	"errors"
	"sync"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/apiclient"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/notify"
)

// Action is the async write a Mutator wraps.
type Action[P, R any] func(ctx context.Context, payload P) (R, error)

// State is the observable snapshot of a Mutator.
type State struct {
	Loading bool
	Err     string
}

// Options control the user feedback of one Submit call.
type Options struct {
	SuccessMessage   string
	ErrorMessage     string
	ShowSuccessToast bool
	ShowErrorToast   bool
}

// DefaultOptions enables both toasts with generic messages.
func DefaultOptions() Options {
	return Options{ShowSuccessToast: true, ShowErrorToast: true}
}

const (
	DefaultSuccessMessage = "Saved successfully"
	DefaultErrorMessage   = "Something went wrong. Please try again."
)

// ErrSubmitInFlight is returned by exclusive mutators when Submit is called
// while a previous call has not settled.
var ErrSubmitInFlight = errors.New("mutate: a submit is already in flight")

// Option configures a Mutator.
type Option func(*config)

type config struct {
	notifier  notify.Notifier
	exclusive bool
}

// WithNotifier sets the toast surface.
func WithNotifier(n notify.Notifier) Option {
	return func(c *config) { c.notifier = n }
}

// WithExclusive makes Submit reject a second call while one is pending,
// instead of letting two requests overlap. Off by default: the default
// matches the UI convention of disabling the submit button.
func WithExclusive() Option {
	return func(c *config) { c.exclusive = true }
}

// Mutator owns the state of one write operation.
type Mutator[P, R any] struct {
	action    Action[P, R]
	notifier  notify.Notifier
	exclusive bool

	mu       sync.Mutex
	state    State
	inFlight int
}

// New creates a Mutator around action.
func New[P, R any](action Action[P, R], opts ...Option) *Mutator[P, R] {
	c := config{notifier: notify.Nop{}}
	for _, opt := range opts {
		opt(&c)
	}
	return &Mutator[P, R]{
		action:    action,
		notifier:  c.notifier,
		exclusive: c.exclusive,
	}
}

// Submit runs the action with payload. On success it emits one success toast
// (unless suppressed) and returns the result; on failure it records and
// toasts the error message, then returns the original error so the caller's
// own handling still fires.
func (m *Mutator[P, R]) Submit(ctx context.Context, payload P, opts Options) (R, error) {
	var zero R

	m.mu.Lock()
	if m.exclusive && m.inFlight > 0 {
		m.mu.Unlock()
		return zero, ErrSubmitInFlight
	}
	m.inFlight++
	m.state.Loading = true
	m.state.Err = ""
	m.mu.Unlock()

	result, err := m.action(ctx, payload)

	m.mu.Lock()
	m.inFlight--
	m.state.Loading = m.inFlight > 0
	if err != nil {
		m.state.Err = failureMessage(err, opts)
	}
	st := m.state
	m.mu.Unlock()

	if err != nil {
		if opts.ShowErrorToast {
			m.notifier.Error(st.Err)
		}
		return zero, err
	}

	if opts.ShowSuccessToast {
		msg := opts.SuccessMessage
		if msg == "" {
			msg = DefaultSuccessMessage
		}
		m.notifier.Success(msg)
	}
	return result, nil
}

// State returns a snapshot of the current mutation state.
func (m *Mutator[P, R]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// failureMessage picks the user-facing message: a typed API error wins, then
// the caller-supplied fallback, then the generic default.
func failureMessage(err error, opts Options) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if opts.ErrorMessage != "" {
		return opts.ErrorMessage
	}
	return DefaultErrorMessage
}
