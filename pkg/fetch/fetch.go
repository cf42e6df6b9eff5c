// Package fetch manages the lifecycle of one repeatable read operation:
// data/loading/error state, manual execution, and debounced re-execution
// when declared dependency values change. It is the read half of the API
// hook runtime; pkg/mutate is the write half.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/notify"
)

// Producer is the zero-argument async read a Fetcher wraps. Parameters are
// captured by the closure; the Fetcher only decides when to run it.
type Producer[T any] func(ctx context.Context) (T, error)

// State is the observable snapshot of a Fetcher.
// Data keeps the last successful result across failed refetches.
type State[T any] struct {
	Data    *T
	Loading bool
	Err     string
}

// ErrClosed is returned by Execute after Close.
var ErrClosed = errors.New("fetch: fetcher is closed")

// DefaultDebounce is the delay applied to dependency-triggered executions.
const DefaultDebounce = 300 * time.Millisecond

// Option configures a Fetcher.
type Option func(*settings)

type settings struct {
	debounce time.Duration
	auto     bool
	notifier notify.Notifier
}

// WithDebounce sets the auto-execution debounce delay.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) { s.debounce = d }
}

// WithAutoExecute controls whether dependency changes schedule a run.
// Defaults to true.
func WithAutoExecute(auto bool) Option {
	return func(s *settings) { s.auto = auto }
}

// WithNotifier sets the toast surface used for failure notifications.
func WithNotifier(n notify.Notifier) Option {
	return func(s *settings) { s.notifier = n }
}

// Fetcher owns the state of one logical query. At most one result is ever
// applied per generation: a newer Execute supersedes older in-flight calls,
// whose results are discarded on arrival (last-issued-wins).
type Fetcher[T any] struct {
	producer Producer[T]
	debounce time.Duration
	auto     bool
	notifier notify.Notifier

	mu      sync.Mutex
	state   State[T]
	gen     uint64
	closed  bool
	deps    string
	depsSet bool
	timer   *time.Timer
	subs    []func(State[T])
}

// New creates a Fetcher around producer.
func New[T any](producer Producer[T], opts ...Option) *Fetcher[T] {
	s := settings{
		debounce: DefaultDebounce,
		auto:     true,
		notifier: notify.Nop{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return &Fetcher[T]{
		producer: producer,
		debounce: s.debounce,
		auto:     s.auto,
		notifier: s.notifier,
	}
}

// Execute runs the producer once and applies the result unless a newer call
// superseded this one or the Fetcher was closed in the meantime.
func (f *Fetcher[T]) Execute(ctx context.Context) (T, error) {
	var zero T

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return zero, ErrClosed
	}
	f.gen++
	myGen := f.gen
	f.state.Loading = true
	f.state.Err = ""
	f.publishLocked()
	f.mu.Unlock()

	result, err := f.producer(ctx)

	f.mu.Lock()
	if f.closed || f.gen != myGen {
		// Superseded or unmounted: drop this result silently.
		f.mu.Unlock()
		return result, err
	}
	if err != nil {
		f.state.Loading = false
		f.state.Err = err.Error()
		f.publishLocked()
		f.mu.Unlock()
		f.notifier.Error(err.Error())
		return zero, err
	}
	f.state.Loading = false
	f.state.Data = &result
	f.publishLocked()
	f.mu.Unlock()
	return result, nil
}

// Refetch is an alias for Execute, for readability at call sites that re-run
// a list after a mutation.
func (f *Fetcher[T]) Refetch(ctx context.Context) (T, error) {
	return f.Execute(ctx)
}

// SetDeps declares the current dependency values. When auto-execution is on
// and the values differ from the last call (compared by value, not identity),
// a debounced Execute is scheduled; a further change within the window
// reschedules it, so a burst collapses into one run.
func (f *Fetcher[T]) SetDeps(ctx context.Context, deps ...any) {
	fp := fingerprint(deps)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	if f.depsSet && fp == f.deps {
		return
	}
	f.deps = fp
	f.depsSet = true

	if !f.auto {
		return
	}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.debounce, func() {
		f.mu.Lock()
		dead := f.closed
		f.mu.Unlock()
		if dead {
			return
		}
		f.Execute(ctx) //nolint:errcheck // state + toast carry the failure
	})
}

// State returns a snapshot of the current fetch state.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Subscribe registers fn to receive every state transition.
func (f *Fetcher[T]) Subscribe(fn func(State[T])) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, fn)
}

// Close marks the Fetcher dead: pending debounce timers are cancelled and
// any in-flight result is discarded when it lands. Further Execute calls
// return ErrClosed.
func (f *Fetcher[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// publishLocked delivers the current state to subscribers. Callers hold mu.
// Subscriber callbacks must not call back into the Fetcher.
func (f *Fetcher[T]) publishLocked() {
	for _, fn := range f.subs {
		fn(f.state)
	}
}

// fingerprint renders dependency values for equality-by-value comparison.
func fingerprint(deps []any) string {
	return fmt.Sprintf("%#v", deps)
}
