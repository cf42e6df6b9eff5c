// Package notify is the shared toast surface. Fetchers and mutators emit
// transient messages here; whatever view layer is attached subscribes and
// renders them. Producers only ever append, so no coordination is needed
// beyond the bus's own lock.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Toast is one transient message.
type Toast struct {
	ID      string
	Level   Level
	Message string
	At      time.Time
}

// Notifier is the producer-side interface the hooks depend on.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// DefaultTTL is how long a toast stays active before auto-dismissal.
const DefaultTTL = 4 * time.Second

// Bus is an in-process toast bus with auto-dismiss.
type Bus struct {
	mu     sync.Mutex
	ttl    time.Duration
	active []Toast
	subs   map[int]func(Toast)
	nextID int
}

var _ Notifier = (*Bus)(nil)

// NewBus creates a Bus. ttl <= 0 falls back to DefaultTTL.
func NewBus(ttl time.Duration) *Bus {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Bus{
		ttl:  ttl,
		subs: make(map[int]func(Toast)),
	}
}

func (b *Bus) Success(message string) { b.emit(LevelSuccess, message) }
func (b *Bus) Error(message string)   { b.emit(LevelError, message) }
func (b *Bus) Info(message string)    { b.emit(LevelInfo, message) }

func (b *Bus) emit(level Level, message string) {
	toast := Toast{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
		At:      time.Now(),
	}

	b.mu.Lock()
	b.active = append(b.active, toast)
	subs := make([]func(Toast), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.Unlock()

	for _, fn := range subs {
		fn(toast)
	}

	time.AfterFunc(b.ttl, func() { b.dismiss(toast.ID) })
}

func (b *Bus) dismiss(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, t := range b.active {
		if t.ID == id {
			b.active = append(b.active[:i], b.active[i+1:]...)
			return
		}
	}
}

// Active returns a snapshot of the not-yet-dismissed toasts.
func (b *Bus) Active() []Toast {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Toast, len(b.active))
	copy(out, b.active)
	return out
}

// Subscribe registers fn for every future toast and returns an unsubscribe
// function.
func (b *Bus) Subscribe(fn func(Toast)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Nop is a Notifier that drops everything. Meant for tests and for callers
// that run without a toast surface.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Error(string)   {}
func (Nop) Info(string)    {}
