package fetch_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/fetch"
)

type recordingNotifier struct {
	mu      sync.Mutex
	errored []string
}

func (n *recordingNotifier) Success(string) {}
func (n *recordingNotifier) Info(string)    {}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errored = append(n.errored, msg)
}

func (n *recordingNotifier) errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errored...)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestExecute(t *testing.T) {
	t.Run("Success Applies Data", func(t *testing.T) {
		f := fetch.New(func(ctx context.Context) ([]string, error) {
			return []string{"a", "b"}, nil
		})
		defer f.Close()

		got, err := f.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 items, got %d", len(got))
		}

		st := f.State()
		if st.Loading {
			t.Errorf("expected loading false after settle")
		}
		if st.Data == nil || len(*st.Data) != 2 {
			t.Errorf("expected data applied, got %+v", st)
		}
		if st.Err != "" {
			t.Errorf("expected empty error, got %q", st.Err)
		}
	})

	t.Run("Failure Keeps Previous Data", func(t *testing.T) {
		notifier := &recordingNotifier{}
		var fail atomic.Bool
		f := fetch.New(func(ctx context.Context) (string, error) {
			if fail.Load() {
				return "", errors.New("could not load bookings")
			}
			return "page-one", nil
		}, fetch.WithNotifier(notifier))
		defer f.Close()

		if _, err := f.Execute(context.Background()); err != nil {
			t.Fatalf("seed fetch failed: %v", err)
		}

		fail.Store(true)
		if _, err := f.Execute(context.Background()); err == nil {
			t.Fatalf("expected fetch error")
		}

		st := f.State()
		if st.Data == nil || *st.Data != "page-one" {
			t.Errorf("expected stale data preserved across failure, got %+v", st.Data)
		}
		if st.Err != "could not load bookings" {
			t.Errorf("expected recorded error message, got %q", st.Err)
		}
		if got := notifier.errors(); len(got) != 1 || got[0] != "could not load bookings" {
			t.Errorf("expected one error toast, got %v", got)
		}
	})

	t.Run("New Execute Clears Previous Error", func(t *testing.T) {
		var fail atomic.Bool
		fail.Store(true)
		f := fetch.New(func(ctx context.Context) (int, error) {
			if fail.Load() {
				return 0, errors.New("boom")
			}
			return 7, nil
		})
		defer f.Close()

		f.Execute(context.Background())
		fail.Store(false)
		if _, err := f.Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st := f.State(); st.Err != "" {
			t.Errorf("expected error cleared, got %q", st.Err)
		}
	})

	t.Run("Superseded Result Is Discarded", func(t *testing.T) {
		release := make(chan struct{})
		var calls atomic.Int32
		f := fetch.New(func(ctx context.Context) (string, error) {
			if calls.Add(1) == 1 {
				<-release
				return "stale", nil
			}
			return "fresh", nil
		}, fetch.WithAutoExecute(false))
		defer f.Close()

		done := make(chan struct{})
		go func() {
			f.Execute(context.Background())
			close(done)
		}()
		waitFor(t, "first call to start", func() bool { return calls.Load() >= 1 })

		got, err := f.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "fresh" {
			t.Errorf("expected fresh result, got %q", got)
		}

		close(release)
		<-done

		if st := f.State(); st.Data == nil || *st.Data != "fresh" {
			t.Errorf("stale result overwrote fresh data: %+v", st.Data)
		}
	})

	t.Run("Subscribe Sees Loading Transition", func(t *testing.T) {
		f := fetch.New(func(ctx context.Context) (string, error) {
			return "x", nil
		})
		defer f.Close()

		var states []fetch.State[string]
		f.Subscribe(func(st fetch.State[string]) {
			states = append(states, st)
		})

		f.Execute(context.Background())

		if len(states) != 2 {
			t.Fatalf("expected 2 transitions, got %d", len(states))
		}
		if !states[0].Loading {
			t.Errorf("first transition should be loading")
		}
		if states[1].Loading || states[1].Data == nil {
			t.Errorf("second transition should carry settled data, got %+v", states[1])
		}
	})
}

func TestClose(t *testing.T) {
	t.Run("Execute After Close", func(t *testing.T) {
		f := fetch.New(func(ctx context.Context) (int, error) { return 1, nil })
		f.Close()

		if _, err := f.Execute(context.Background()); !errors.Is(err, fetch.ErrClosed) {
			t.Errorf("expected ErrClosed, got %v", err)
		}
	})

	t.Run("In Flight Result Dropped On Close", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		f := fetch.New(func(ctx context.Context) (int, error) {
			close(started)
			<-release
			return 42, nil
		}, fetch.WithAutoExecute(false))

		done := make(chan struct{})
		go func() {
			f.Execute(context.Background())
			close(done)
		}()
		<-started

		f.Close()
		close(release)
		<-done

		if st := f.State(); st.Data != nil {
			t.Errorf("expected no data applied after close, got %v", *st.Data)
		}
	})
}

func TestSetDeps(t *testing.T) {
	t.Run("Burst Collapses To One Fetch", func(t *testing.T) {
		var calls atomic.Int32
		f := fetch.New(func(ctx context.Context) (int, error) {
			return int(calls.Add(1)), nil
		}, fetch.WithDebounce(20*time.Millisecond))
		defer f.Close()

		ctx := context.Background()
		for page := 1; page <= 5; page++ {
			f.SetDeps(ctx, "pending", page)
		}

		waitFor(t, "debounced fetch", func() bool { return calls.Load() == 1 })
		time.Sleep(100 * time.Millisecond)
		if got := calls.Load(); got != 1 {
			t.Errorf("expected exactly 1 fetch for the burst, got %d", got)
		}
	})

	t.Run("Unchanged Deps Do Not Refetch", func(t *testing.T) {
		var calls atomic.Int32
		f := fetch.New(func(ctx context.Context) (int, error) {
			return int(calls.Add(1)), nil
		}, fetch.WithDebounce(10*time.Millisecond))
		defer f.Close()

		ctx := context.Background()
		f.SetDeps(ctx, "approved", 1)
		waitFor(t, "initial fetch", func() bool { return calls.Load() == 1 })

		f.SetDeps(ctx, "approved", 1)
		time.Sleep(60 * time.Millisecond)
		if got := calls.Load(); got != 1 {
			t.Errorf("expected no refetch on identical deps, got %d calls", got)
		}
	})

	t.Run("Changed Deps Refetch", func(t *testing.T) {
		var calls atomic.Int32
		f := fetch.New(func(ctx context.Context) (int, error) {
			return int(calls.Add(1)), nil
		}, fetch.WithDebounce(10*time.Millisecond))
		defer f.Close()

		ctx := context.Background()
		f.SetDeps(ctx, 1)
		waitFor(t, "first fetch", func() bool { return calls.Load() == 1 })

		f.SetDeps(ctx, 2)
		waitFor(t, "second fetch", func() bool { return calls.Load() == 2 })
	})

	t.Run("Auto Execute Off", func(t *testing.T) {
		var calls atomic.Int32
		f := fetch.New(func(ctx context.Context) (int, error) {
			return int(calls.Add(1)), nil
		}, fetch.WithAutoExecute(false), fetch.WithDebounce(5*time.Millisecond))
		defer f.Close()

		f.SetDeps(context.Background(), "anything")
		time.Sleep(50 * time.Millisecond)
		if got := calls.Load(); got != 0 {
			t.Errorf("expected no fetch with auto-execute off, got %d", got)
		}
	})

	t.Run("Close Cancels Pending Debounce", func(t *testing.T) {
		var calls atomic.Int32
		f := fetch.New(func(ctx context.Context) (int, error) {
			return int(calls.Add(1)), nil
		}, fetch.WithDebounce(30*time.Millisecond))

		f.SetDeps(context.Background(), "x")
		f.Close()

		time.Sleep(100 * time.Millisecond)
		if got := calls.Load(); got != 0 {
			t.Errorf("expected pending fetch cancelled by close, got %d", got)
		}
	})
}
