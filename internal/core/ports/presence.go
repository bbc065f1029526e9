package ports

import "dispatch/internal/core/domain/model/kernel"

// Role identifies which side of the marketplace a connected user belongs to.
type Role int

const (
	RoleUnknown Role = iota
	RoleClient
	RoleDriver
)

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleDriver:
		return "driver"
	default:
		return "unknown"
	}
}

// Connection is a single live transport session belonging to one user.
// A user may hold several connections at once (for example a phone and a
// tablet), each with its own handle.
type Connection interface {
	// ID returns the unique connection handle.
	ID() kernel.UUID

	// Send enqueues an event for delivery on this connection. Events
	// enqueued on the same connection are delivered in order. Returns an
	// error when the connection is no longer usable.
	Send(event string, payload []byte) error

	// Close tears the connection down. Safe to call more than once.
	Close() error
}

// PresenceRegistry tracks which users are currently reachable and over which
// connections. All methods are safe for concurrent use.
type PresenceRegistry interface {
	// Connect registers a live connection for the user. Registering a
	// handle that is already present is a no-op.
	Connect(userID kernel.UUID, role Role, conn Connection)

	// Disconnect removes a connection by its handle. Unknown handles are
	// ignored. The user counts as offline once their last handle is gone.
	Disconnect(connID kernel.UUID)

	// ConnectionsOf returns the live connections of the given user. The
	// returned slice is a snapshot and safe to range over.
	ConnectionsOf(userID kernel.UUID) []Connection

	// IsOnline reports whether the user has at least one live connection.
	IsOnline(userID kernel.UUID) bool

	// OnlineUsers returns a snapshot of all user identifiers currently
	// online in the given role.
	OnlineUsers(role Role) []kernel.UUID
}
