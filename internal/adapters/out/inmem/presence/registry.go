// Package presence provides the in-memory implementation of the presence
// registry. State is process-local: connection liveness is only meaningful on
// the node that owns the socket, so it is never persisted.
package presence

import (
	"hash/fnv"
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

const shardCount = 32

type entry struct {
	userID kernel.UUID
	role   ports.Role
	conn   ports.Connection
}

type shard struct {
	mu sync.RWMutex
	// connection handle -> live entry
	conns map[kernel.UUID]entry
}

// Registry tracks live connections sharded by user id, so connect and
// disconnect storms on unrelated users never contend on one lock.
//
// A connection handle is registered under the shard of its OWNING USER, which
// keeps all of a user's handles behind a single lock and makes per-user
// snapshots consistent.
type Registry struct {
	shards [shardCount]*shard
	// handle -> owning user, for Disconnect by handle alone
	owners sync.Map
	logger *slog.Logger
}

// NewRegistry creates an empty presence registry.
func NewRegistry(logger *slog.Logger) *Registry {
	r := &Registry{
		logger: logger.With("component", "presence"),
	}
	for i := range r.shards {
		r.shards[i] = &shard{conns: make(map[kernel.UUID]entry)}
	}

	return r
}

func (r *Registry) shardOf(userID kernel.UUID) *shard {
	h := fnv.New32a()
	raw := userID.Bytes()
	_, _ = h.Write(raw[:])

	return r.shards[h.Sum32()%shardCount]
}

// Connect registers a live connection for the user. Registering the same
// handle twice is a no-op.
func (r *Registry) Connect(userID kernel.UUID, role ports.Role, conn ports.Connection) {
	s := r.shardOf(userID)

	s.mu.Lock()
	if _, exists := s.conns[conn.ID()]; exists {
		s.mu.Unlock()
		return
	}
	s.conns[conn.ID()] = entry{userID: userID, role: role, conn: conn}
	s.mu.Unlock()

	r.owners.Store(conn.ID(), userID)

	r.logger.Debug("connection registered",
		"userId", userID.String(),
		"role", role.String(),
		"connId", conn.ID().String())
}

// Disconnect removes a connection by handle. Unknown handles are logged and
// ignored, so racing disconnect paths stay safe.
func (r *Registry) Disconnect(connID kernel.UUID) {
	owner, ok := r.owners.LoadAndDelete(connID)
	if !ok {
		r.logger.Debug("disconnect for unknown connection", "connId", connID.String())
		return
	}

	userID := owner.(kernel.UUID)
	s := r.shardOf(userID)

	s.mu.Lock()
	delete(s.conns, connID)
	s.mu.Unlock()

	r.logger.Debug("connection removed",
		"userId", userID.String(),
		"connId", connID.String())
}

// ConnectionsOf returns a snapshot of the user's live connections.
func (r *Registry) ConnectionsOf(userID kernel.UUID) []ports.Connection {
	s := r.shardOf(userID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var conns []ports.Connection
	for _, e := range s.conns {
		if e.userID.IsEqual(userID) {
			conns = append(conns, e.conn)
		}
	}

	return conns
}

// IsOnline reports whether the user has at least one live connection.
func (r *Registry) IsOnline(userID kernel.UUID) bool {
	s := r.shardOf(userID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.conns {
		if e.userID.IsEqual(userID) {
			return true
		}
	}

	return false
}

// OnlineUsers returns a deduplicated snapshot of users online in the role.
func (r *Registry) OnlineUsers(role ports.Role) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{})
	var users []kernel.UUID

	for _, s := range r.shards {
		s.mu.RLock()
		for _, e := range s.conns {
			if e.role != role {
				continue
			}
			if _, dup := seen[e.userID]; dup {
				continue
			}
			seen[e.userID] = struct{}{}
			users = append(users, e.userID)
		}
		s.mu.RUnlock()
	}

	return users
}

var _ ports.PresenceRegistry = (*Registry)(nil)
