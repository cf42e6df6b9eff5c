package mutate_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/apiclient"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mutate"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errored   []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errored = append(n.errored, msg)
}

func (n *recordingNotifier) Info(string) {}

func (n *recordingNotifier) snapshot() ([]string, []string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...), append([]string(nil), n.errored...)
}

func TestSubmit(t *testing.T) {
	t.Run("Success Returns Result And Toasts", func(t *testing.T) {
		notifier := &recordingNotifier{}
		m := mutate.New(func(ctx context.Context, in string) (string, error) {
			return "created:" + in, nil
		}, mutate.WithNotifier(notifier))

		opts := mutate.DefaultOptions()
		opts.SuccessMessage = "Booking sent"
		got, err := m.Submit(context.Background(), "b-1", opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "created:b-1" {
			t.Errorf("unexpected result %q", got)
		}

		successes, errored := notifier.snapshot()
		if len(successes) != 1 || successes[0] != "Booking sent" {
			t.Errorf("expected one success toast %q, got %v", "Booking sent", successes)
		}
		if len(errored) != 0 {
			t.Errorf("expected no error toasts, got %v", errored)
		}

		st := m.State()
		if st.Loading || st.Err != "" {
			t.Errorf("expected settled clean state, got %+v", st)
		}
	})

	t.Run("Default Success Message", func(t *testing.T) {
		notifier := &recordingNotifier{}
		m := mutate.New(func(ctx context.Context, in struct{}) (struct{}, error) {
			return struct{}{}, nil
		}, mutate.WithNotifier(notifier))

		if _, err := m.Submit(context.Background(), struct{}{}, mutate.DefaultOptions()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		successes, _ := notifier.snapshot()
		if len(successes) != 1 || successes[0] != mutate.DefaultSuccessMessage {
			t.Errorf("expected default success message, got %v", successes)
		}
	})

	t.Run("Failure Returns Original Error", func(t *testing.T) {
		sentinel := errors.New("insert failed")
		m := mutate.New(func(ctx context.Context, in struct{}) (struct{}, error) {
			return struct{}{}, sentinel
		})

		_, err := m.Submit(context.Background(), struct{}{}, mutate.DefaultOptions())
		if !errors.Is(err, sentinel) {
			t.Errorf("expected original error back, got %v", err)
		}
	})

	t.Run("API Error Message Wins", func(t *testing.T) {
		notifier := &recordingNotifier{}
		m := mutate.New(func(ctx context.Context, in struct{}) (struct{}, error) {
			return struct{}{}, &apiclient.Error{Status: 409, Message: "service name already exists"}
		}, mutate.WithNotifier(notifier))

		opts := mutate.DefaultOptions()
		opts.ErrorMessage = "fallback message"
		m.Submit(context.Background(), struct{}{}, opts)

		if st := m.State(); st.Err != "service name already exists" {
			t.Errorf("expected typed API message, got %q", st.Err)
		}
		_, errored := notifier.snapshot()
		if len(errored) != 1 || errored[0] != "service name already exists" {
			t.Errorf("expected API message toast, got %v", errored)
		}
	})

	t.Run("Caller Fallback Then Generic Default", func(t *testing.T) {
		m := mutate.New(func(ctx context.Context, in struct{}) (struct{}, error) {
			return struct{}{}, errors.New("raw transport noise")
		})

		opts := mutate.DefaultOptions()
		opts.ErrorMessage = "We could not save your changes."
		m.Submit(context.Background(), struct{}{}, opts)
		if st := m.State(); st.Err != "We could not save your changes." {
			t.Errorf("expected caller fallback, got %q", st.Err)
		}

		m.Submit(context.Background(), struct{}{}, mutate.DefaultOptions())
		if st := m.State(); st.Err != mutate.DefaultErrorMessage {
			t.Errorf("expected generic default, got %q", st.Err)
		}
	})

	t.Run("Suppressed Toasts Stay Silent", func(t *testing.T) {
		notifier := &recordingNotifier{}
		m := mutate.New(func(ctx context.Context, in struct{}) (struct{}, error) {
			return struct{}{}, errors.New("nope")
		}, mutate.WithNotifier(notifier))

		m.Submit(context.Background(), struct{}{}, mutate.Options{})

		successes, errored := notifier.snapshot()
		if len(successes) != 0 || len(errored) != 0 {
			t.Errorf("expected no toasts, got %v / %v", successes, errored)
		}
		// state still records the failure for inline rendering
		if st := m.State(); st.Err == "" {
			t.Errorf("expected state error to be set")
		}
	})

	t.Run("Exclusive Rejects Overlapping Submit", func(t *testing.T) {
		release := make(chan struct{})
		m := mutate.New(func(ctx context.Context, in struct{}) (struct{}, error) {
			<-release
			return struct{}{}, nil
		}, mutate.WithExclusive())

		done := make(chan error, 1)
		go func() {
			_, err := m.Submit(context.Background(), struct{}{}, mutate.Options{})
			done <- err
		}()

		deadline := time.Now().Add(2 * time.Second)
		for !m.State().Loading {
			if time.Now().After(deadline) {
				t.Fatalf("first submit never started")
			}
			time.Sleep(time.Millisecond)
		}

		_, err := m.Submit(context.Background(), struct{}{}, mutate.Options{})
		if !errors.Is(err, mutate.ErrSubmitInFlight) {
			t.Errorf("expected ErrSubmitInFlight, got %v", err)
		}

		close(release)
		if err := <-done; err != nil {
			t.Fatalf("first submit failed: %v", err)
		}

		// settled: a fresh submit goes through again
		if _, err := m.Submit(context.Background(), struct{}{}, mutate.Options{}); err != nil {
			t.Errorf("expected submit after settle to succeed, got %v", err)
		}
	})
}
