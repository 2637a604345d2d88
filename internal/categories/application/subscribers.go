package application

import (
	"context"

	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/events"
)

// RegisterSubscribers drops the cached list whenever post counts may change.
func RegisterSubscribers(bus *eventbus.Bus, svc *CategoriesService) {
	invalidate := func(ctx context.Context, _ eventbus.Event) error {
		svc.Invalidate(ctx)
		return nil
	}
	bus.Subscribe(events.PostCreatedTopic, invalidate)
	bus.Subscribe(events.PostUpdatedTopic, invalidate)
	bus.Subscribe(events.PostDeletedTopic, invalidate)
}
