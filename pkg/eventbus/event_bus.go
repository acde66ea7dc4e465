// Package eventbus provides publish and subscribe over watermill for the
// page lifecycle events.
package eventbus

import (
	"context"

	"github.com/pageforge/pageforge/pkg/events"
)

type Event interface {
	GetType() events.EventType
}

type EventHandler func(ctx context.Context, event any) error

type EventBus interface {
	Publish(ctx context.Context, key string, event Event) error
	Subscribe(ctx context.Context) error
	Handle(eventType events.EventType, handler EventHandler) error
	Close() error
	GenerateID() string
}
