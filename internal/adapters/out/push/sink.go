// Package push provides the push-notification sink used as the offline
// fallback for real-time events.
package push

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// LogSink records push notifications in the structured log instead of
// calling a provider. It stands in for a real delivery gateway (APNs, FCM)
// behind the NotificationSink port; swapping providers is a composition
// root change.
type LogSink struct {
	logger *slog.Logger
}

var _ ports.NotificationSink = (*LogSink)(nil)

// NewLogSink creates a sink writing push notifications to the given logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{
		logger: logger.With("component", "push"),
	}
}

// Push records the notification. It never fails: push delivery is
// best-effort and a provider outage must not break order flow.
func (s *LogSink) Push(_ context.Context, userID kernel.UUID, event string, payload []byte) error {
	s.logger.Info("push notification",
		"user_id", userID.String(),
		"event", event,
		"payload_bytes", len(payload),
	)
	return nil
}
