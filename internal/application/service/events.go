package service

import "context"

// EventPublisher emits domain events to the message bus. Publishing is
// best-effort from the caller's point of view: use cases log failures
// and continue.
type EventPublisher interface {
	PublishPortfolioEvent(ctx context.Context, eventType string, payload any) error
	PublishThemeEvent(ctx context.Context, eventType string, payload any) error
	Close()
}
