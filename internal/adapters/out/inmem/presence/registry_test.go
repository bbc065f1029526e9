package presence_test

import (
	"log/slog"
	"sync"
	"testing"

	"dispatch/internal/adapters/out/inmem/presence"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	id kernel.UUID
}

func newFakeConn() *fakeConn {
	return &fakeConn{id: kernel.NewUUID()}
}

func (c *fakeConn) ID() kernel.UUID           { return c.id }
func (c *fakeConn) Send(string, []byte) error { return nil }
func (c *fakeConn) Close() error              { return nil }

func newRegistry() *presence.Registry {
	return presence.NewRegistry(slog.New(slog.DiscardHandler))
}

func TestRegistry_ConnectDisconnect(t *testing.T) {
	t.Run("user is online after connect and offline after last disconnect", func(t *testing.T) {
		registry := newRegistry()
		userID := kernel.NewUUID()
		first := newFakeConn()
		second := newFakeConn()

		registry.Connect(userID, ports.RoleDriver, first)
		registry.Connect(userID, ports.RoleDriver, second)

		assert.True(t, registry.IsOnline(userID))
		assert.Len(t, registry.ConnectionsOf(userID), 2)

		registry.Disconnect(first.ID())
		assert.True(t, registry.IsOnline(userID))

		registry.Disconnect(second.ID())
		assert.False(t, registry.IsOnline(userID))
		assert.Empty(t, registry.ConnectionsOf(userID))
	})

	t.Run("connecting the same handle twice is a no-op", func(t *testing.T) {
		registry := newRegistry()
		userID := kernel.NewUUID()
		conn := newFakeConn()

		registry.Connect(userID, ports.RoleClient, conn)
		registry.Connect(userID, ports.RoleClient, conn)

		assert.Len(t, registry.ConnectionsOf(userID), 1)
	})

	t.Run("disconnecting an unknown handle is ignored", func(t *testing.T) {
		registry := newRegistry()

		assert.NotPanics(t, func() {
			registry.Disconnect(kernel.NewUUID())
		})
	})

	t.Run("disconnect is idempotent", func(t *testing.T) {
		registry := newRegistry()
		userID := kernel.NewUUID()
		conn := newFakeConn()

		registry.Connect(userID, ports.RoleDriver, conn)
		registry.Disconnect(conn.ID())
		registry.Disconnect(conn.ID())

		assert.False(t, registry.IsOnline(userID))
	})
}

func TestRegistry_OnlineUsers(t *testing.T) {
	registry := newRegistry()

	driverID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	registry.Connect(driverID, ports.RoleDriver, newFakeConn())
	registry.Connect(driverID, ports.RoleDriver, newFakeConn())
	registry.Connect(clientID, ports.RoleClient, newFakeConn())

	drivers := registry.OnlineUsers(ports.RoleDriver)
	require.Len(t, drivers, 1, "multi-connection driver must appear once")
	assert.True(t, drivers[0].IsEqual(driverID))

	clients := registry.OnlineUsers(ports.RoleClient)
	require.Len(t, clients, 1)
	assert.True(t, clients[0].IsEqual(clientID))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := newRegistry()

	const users = 50
	const connsPerUser = 4

	var wg sync.WaitGroup
	for range users {
		wg.Add(1)
		go func() {
			defer wg.Done()

			userID := kernel.NewUUID()
			conns := make([]*fakeConn, 0, connsPerUser)
			for range connsPerUser {
				conn := newFakeConn()
				conns = append(conns, conn)
				registry.Connect(userID, ports.RoleDriver, conn)
			}

			_ = registry.ConnectionsOf(userID)
			_ = registry.OnlineUsers(ports.RoleDriver)

			for _, conn := range conns {
				registry.Disconnect(conn.ID())
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, registry.OnlineUsers(ports.RoleDriver))
}
