package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events to interested consumers outside
// the transaction boundary. Implementations decide on transport and routing.
type EventPublisher interface {
	// Publish delivers a single domain event.
	// Called after the transaction that produced the event has committed.
	Publish(ctx context.Context, event kernel.DomainEvent) error
}
