package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// NotificationSink delivers events to users who are not connected right now,
// typically over a mobile push channel. Delivery is best-effort.
type NotificationSink interface {
	Push(ctx context.Context, userID kernel.UUID, event string, payload []byte) error
}
