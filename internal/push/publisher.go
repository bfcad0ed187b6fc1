package push

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/storyloop/storyloop/internal/push Publisher

import (
	"context"
	"log/slog"
)

// Publisher delivers one event to one connection. The transport layer
// implements it; services stay transport-agnostic.
type Publisher interface {
	// Publish sends an event to a single connection
	Publish(ctx context.Context, connID string, event *Event) error
}

// Fanout delivers an event to every connection in members independently. A
// failed delivery to one member is logged and does not block the others.
func Fanout(ctx context.Context, logger *slog.Logger, publisher Publisher, members []string, event *Event) {
	for _, connID := range members {
		if err := publisher.Publish(ctx, connID, event); err != nil {
			logger.Warn("failed to deliver event",
				"conn_id", connID,
				"event_type", event.Type,
				"story_id", event.StoryID,
				"error", err)
		}
	}
}
