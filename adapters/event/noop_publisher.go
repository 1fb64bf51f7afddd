package event

import "context"

// NoopPublisher satisfies the publisher port when Kafka is not
// configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishPortfolioEvent(context.Context, string, any) error { return nil }

func (p *NoopPublisher) PublishThemeEvent(context.Context, string, any) error { return nil }

func (p *NoopPublisher) Close() {}
