package notifications

import "context"

// Publisher emits ticket lifecycle events
type Publisher interface {
	PublishTicketIssued(ctx context.Context, event *TicketIssued) error
	Close() error
}

type noopPublisher struct{}

// NewNoopPublisher is used when Kafka is disabled
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishTicketIssued(context.Context, *TicketIssued) error { return nil }

func (noopPublisher) Close() error { return nil }
