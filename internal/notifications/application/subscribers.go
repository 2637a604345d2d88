package application

import (
	"context"

	"github.com/philly/inkwell/internal/notifications/domain"
	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/events"
)

// RegisterSubscribers turns engagement events into stored notifications.
func RegisterSubscribers(bus *eventbus.Bus, svc *NotificationsService) {
	bus.Subscribe(events.CommentCreatedTopic, func(ctx context.Context, e eventbus.Event) error {
		p, ok := e.Payload.(events.CommentCreatedEvent)
		if !ok {
			return nil
		}
		commentID := p.CommentID
		return svc.Record(ctx, &domain.Notification{
			OwnerID:   p.PostAuthor,
			ActorID:   p.ActorID,
			Type:      domain.TypeComment,
			PostID:    p.PostID,
			CommentID: &commentID,
			CreatedAt: p.OccurredAt,
		})
	})
	bus.Subscribe(events.LikeCreatedTopic, func(ctx context.Context, e eventbus.Event) error {
		p, ok := e.Payload.(events.LikeCreatedEvent)
		if !ok {
			return nil
		}
		return svc.Record(ctx, &domain.Notification{
			OwnerID:   p.PostAuthor,
			ActorID:   p.ActorID,
			Type:      domain.TypeLike,
			PostID:    p.PostID,
			CreatedAt: p.OccurredAt,
		})
	})
}
