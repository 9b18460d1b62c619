package ports

import (
	"context"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

// AuditRepository persists authentication events.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuthEvent) error

	// ListRecent returns up to limit events, newest first.
	ListRecent(ctx context.Context, limit int64) ([]*domain.AuthEvent, error)
}

// AuditSink accepts events for asynchronous recording. Enqueueing must never
// fail the authentication action that produced the event.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}
