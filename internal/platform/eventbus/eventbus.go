package eventbus

import "context"

type Topic string

// Event is a message passed on the bus.
type Event struct {
	Topic   Topic
	Payload any
}

type Handler func(ctx context.Context, event Event) error
