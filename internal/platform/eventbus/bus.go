package eventbus

import (
	"context"
	"sync"

	"github.com/philly/inkwell/internal/platform/logger"
)

// Publisher is the narrow port services depend on.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Bus dispatches events to subscribers asynchronously.
type Bus struct {
	subscriptions map[Topic][]Handler
	mu            sync.RWMutex
	inflight      sync.WaitGroup
	logger        logger.Logger
}

func NewBus(logger logger.Logger) *Bus {
	return &Bus{
		subscriptions: make(map[Topic][]Handler),
		logger:        logger,
	}
}

func (b *Bus) Subscribe(topic Topic, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions[topic] = append(b.subscriptions[topic], handler)
}

// Publish is fire-and-forget. Handlers run on a context that keeps the
// request's values but not its cancellation, so they outlive the response.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.subscriptions[event.Topic]...)
	b.mu.RUnlock()

	detached := context.WithoutCancel(ctx)
	for _, h := range handlers {
		b.inflight.Add(1)
		go func(h Handler) {
			defer b.inflight.Done()
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error(detached, "event handler panicked", "topic", event.Topic, "panic", r)
				}
			}()
			if err := h(detached, event); err != nil {
				b.logger.Error(detached, "event handler failed", "topic", event.Topic, "error", err)
			}
		}(h)
	}
}

// Wait blocks until every handler started so far has returned.
func (b *Bus) Wait() {
	b.inflight.Wait()
}

// Drain waits for in-flight handlers or gives up when ctx is done.
func (b *Bus) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Publisher = (*Bus)(nil)
