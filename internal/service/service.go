// Package service implements the domain operations. Every operation runs in
// one transaction obtained from database.WithTx and builds its repositories
// on that transactional handle.
package service

import (
	"context"

	"github.com/WorldsAreYours/fit-and-easy/internal/queue"
)

// EventPublisher delivers workout activity events. Publishing happens after
// commit and its failures never fail the operation.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.ActivityEvent) error
}
