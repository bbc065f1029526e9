package notifier

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Router fans a wire event out to a user's live connections, or hands it to
// the push sink when the user has none. Connections that fail to accept a
// send are treated as dead: they are closed and removed from the registry so
// later fan-outs skip them.
type Router struct {
	presence ports.PresenceRegistry
	sink     ports.NotificationSink
	logger   *slog.Logger
}

// NewRouter creates a router over the given presence registry and push sink.
func NewRouter(presence ports.PresenceRegistry, sink ports.NotificationSink, logger *slog.Logger) *Router {
	return &Router{
		presence: presence,
		sink:     sink,
		logger:   logger.With("component", "notifier"),
	}
}

// NotifyUser delivers the event to every live connection of the user, falling
// back to the push channel when the user is offline. Delivery is best-effort:
// per-connection failures are pruned, never propagated.
func (r *Router) NotifyUser(ctx context.Context, userID kernel.UUID, event string, payload Payload) {
	conns := r.presence.ConnectionsOf(userID)
	if len(conns) == 0 {
		r.pushOffline(ctx, userID, event, payload)
		return
	}

	body := payload.Marshal()
	for _, conn := range conns {
		if err := conn.Send(event, body); err != nil {
			r.prune(userID, conn, event, err)
		}
	}
}

// BroadcastToRole delivers the event to every user currently online in the
// given role. Users going offline mid-broadcast are skipped.
func (r *Router) BroadcastToRole(ctx context.Context, role ports.Role, event string, payload Payload) {
	body := payload.Marshal()
	for _, userID := range r.presence.OnlineUsers(role) {
		for _, conn := range r.presence.ConnectionsOf(userID) {
			if err := conn.Send(event, body); err != nil {
				r.prune(userID, conn, event, err)
			}
		}
	}
}

func (r *Router) pushOffline(ctx context.Context, userID kernel.UUID, event string, payload Payload) {
	if err := r.sink.Push(ctx, userID, event, payload.Marshal()); err != nil {
		r.logger.Warn("push delivery failed",
			"userId", userID.String(),
			"event", event,
			"error", err)
	}
}

func (r *Router) prune(userID kernel.UUID, conn ports.Connection, event string, err error) {
	r.logger.Info("pruning dead connection",
		"userId", userID.String(),
		"connId", conn.ID().String(),
		"event", event,
		"error", err)

	r.presence.Disconnect(conn.ID())
	_ = conn.Close()
}
