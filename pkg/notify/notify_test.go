package notify_test

import (
	"sync"
	"testing"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/notify"
)

func TestBus(t *testing.T) {
	t.Run("Emit Levels", func(t *testing.T) {
		bus := notify.NewBus(time.Minute)
		bus.Success("saved")
		bus.Error("boom")
		bus.Info("fyi")

		active := bus.Active()
		if len(active) != 3 {
			t.Fatalf("expected 3 active toasts, got %d", len(active))
		}
		levels := []notify.Level{notify.LevelSuccess, notify.LevelError, notify.LevelInfo}
		for i, want := range levels {
			if active[i].Level != want {
				t.Errorf("toast %d: expected level %s, got %s", i, want, active[i].Level)
			}
		}
		if active[0].ID == active[1].ID {
			t.Errorf("expected unique toast IDs")
		}
	})

	t.Run("Auto Dismiss After TTL", func(t *testing.T) {
		bus := notify.NewBus(30 * time.Millisecond)
		bus.Success("transient")
		if got := len(bus.Active()); got != 1 {
			t.Fatalf("expected 1 active toast, got %d", got)
		}

		deadline := time.Now().Add(2 * time.Second)
		for len(bus.Active()) != 0 {
			if time.Now().After(deadline) {
				t.Fatalf("toast was never dismissed")
			}
			time.Sleep(10 * time.Millisecond)
		}
	})

	t.Run("Subscribe And Unsubscribe", func(t *testing.T) {
		bus := notify.NewBus(time.Minute)

		var mu sync.Mutex
		var got []notify.Toast
		unsub := bus.Subscribe(func(toast notify.Toast) {
			mu.Lock()
			got = append(got, toast)
			mu.Unlock()
		})

		bus.Error("first")
		unsub()
		bus.Error("second")

		mu.Lock()
		defer mu.Unlock()
		if len(got) != 1 {
			t.Fatalf("expected 1 delivered toast, got %d", len(got))
		}
		if got[0].Message != "first" {
			t.Errorf("expected message %q, got %q", "first", got[0].Message)
		}
	})

	t.Run("Zero TTL Falls Back To Default", func(t *testing.T) {
		bus := notify.NewBus(0)
		bus.Info("still here")
		if got := len(bus.Active()); got != 1 {
			t.Errorf("expected toast to stay active under default TTL, got %d active", got)
		}
	})
}
