// Package service holds the resource managers for reservations, contact
// messages, reviews and the menu. Each manager validates what the request
// boundary cannot, stamps identifiers and timestamps, and talks to its own
// store collection.
package service

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/queue"
)

// ListLimit caps every list query.
const ListLimit = 1000

// Notifier delivers staff notifications. Delivery is best effort.
type Notifier interface {
	Publish(ctx context.Context, ev queue.Event) error
}

func notify(ctx context.Context, n Notifier, logger *log.Logger, ev queue.Event) {
	if n == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	if err := n.Publish(ctx, ev); err != nil {
		logger.Warnf("notification %s for %s not delivered: %v", ev.Type, ev.RecordID, err)
	}
}
