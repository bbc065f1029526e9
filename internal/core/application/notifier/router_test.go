package notifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"dispatch/internal/adapters/out/inmem/presence"
	"dispatch/internal/core/application/notifier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedSend struct {
	event   string
	payload []byte
}

type recordingConn struct {
	mu      sync.Mutex
	id      kernel.UUID
	sends   []recordedSend
	sendErr error
	closed  bool
}

func newRecordingConn() *recordingConn {
	return &recordingConn{id: kernel.NewUUID()}
}

func (c *recordingConn) ID() kernel.UUID { return c.id }

func (c *recordingConn) Send(event string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sends = append(c.sends, recordedSend{event: event, payload: payload})
	return nil
}

func (c *recordingConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *recordingConn) recorded() []recordedSend {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]recordedSend(nil), c.sends...)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Push(ctx context.Context, userID kernel.UUID, event string, payload []byte) error {
	args := m.Called(ctx, userID, event, payload)
	return args.Error(0)
}

func newRouterFixture(sink ports.NotificationSink) (*notifier.Router, *presence.Registry) {
	logger := slog.New(slog.DiscardHandler)
	registry := presence.NewRegistry(logger)

	return notifier.NewRouter(registry, sink, logger), registry
}

func TestRouter_NotifyUser(t *testing.T) {
	ctx := context.Background()

	t.Run("should deliver to every live connection of the user", func(t *testing.T) {
		sink := &MockNotificationSink{}
		router, registry := newRouterFixture(sink)

		userID := kernel.NewUUID()
		phone := newRecordingConn()
		tablet := newRecordingConn()
		registry.Connect(userID, ports.RoleClient, phone)
		registry.Connect(userID, ports.RoleClient, tablet)

		router.NotifyUser(ctx, userID, notifier.EventOrderAccepted, notifier.Payload{OrderID: "o-1"})

		require.Len(t, phone.recorded(), 1)
		require.Len(t, tablet.recorded(), 1)
		assert.Equal(t, notifier.EventOrderAccepted, phone.recorded()[0].event)
		sink.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fall back to push sink when user is offline", func(t *testing.T) {
		sink := &MockNotificationSink{}
		router, _ := newRouterFixture(sink)
		userID := kernel.NewUUID()

		sink.On("Push", mock.Anything, userID, notifier.EventRideEnded, mock.Anything).Return(nil)

		router.NotifyUser(ctx, userID, notifier.EventRideEnded, notifier.Payload{OrderID: "o-2"})

		sink.AssertExpectations(t)
	})

	t.Run("should swallow push sink failure", func(t *testing.T) {
		sink := &MockNotificationSink{}
		router, _ := newRouterFixture(sink)
		userID := kernel.NewUUID()

		sink.On("Push", mock.Anything, userID, mock.Anything, mock.Anything).
			Return(errors.New("push gateway unavailable"))

		assert.NotPanics(t, func() {
			router.NotifyUser(ctx, userID, notifier.EventOrderCancelled, notifier.Payload{})
		})
	})

	t.Run("should prune connection that fails to send", func(t *testing.T) {
		sink := &MockNotificationSink{}
		router, registry := newRouterFixture(sink)

		userID := kernel.NewUUID()
		dead := newRecordingConn()
		dead.sendErr = errors.New("broken pipe")
		live := newRecordingConn()
		registry.Connect(userID, ports.RoleClient, dead)
		registry.Connect(userID, ports.RoleClient, live)

		router.NotifyUser(ctx, userID, notifier.EventDriverArrived, notifier.Payload{OrderID: "o-3"})

		assert.True(t, dead.closed)
		assert.Len(t, live.recorded(), 1)
		require.Len(t, registry.ConnectionsOf(userID), 1)
		assert.True(t, registry.ConnectionsOf(userID)[0].ID().IsEqual(live.ID()))
	})

	t.Run("should stamp timestamp into payload", func(t *testing.T) {
		sink := &MockNotificationSink{}
		router, registry := newRouterFixture(sink)

		userID := kernel.NewUUID()
		conn := newRecordingConn()
		registry.Connect(userID, ports.RoleClient, conn)

		router.NotifyUser(ctx, userID, notifier.EventRideStarted, notifier.Payload{OrderID: "o-4"})

		require.Len(t, conn.recorded(), 1)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(conn.recorded()[0].payload, &decoded))
		assert.Equal(t, "o-4", decoded["orderId"])
		assert.NotEmpty(t, decoded["timestamp"])
	})
}

func TestRouter_BroadcastToRole(t *testing.T) {
	ctx := context.Background()

	t.Run("should reach only users in the role", func(t *testing.T) {
		sink := &MockNotificationSink{}
		router, registry := newRouterFixture(sink)

		driverConn := newRecordingConn()
		clientConn := newRecordingConn()
		registry.Connect(kernel.NewUUID(), ports.RoleDriver, driverConn)
		registry.Connect(kernel.NewUUID(), ports.RoleClient, clientConn)

		router.BroadcastToRole(ctx, ports.RoleDriver, notifier.EventNewOrder, notifier.Payload{OrderID: "o-5"})

		assert.Len(t, driverConn.recorded(), 1)
		assert.Empty(t, clientConn.recorded())
	})

	t.Run("should not fall back to push for offline users", func(t *testing.T) {
		sink := &MockNotificationSink{}
		router, _ := newRouterFixture(sink)

		router.BroadcastToRole(ctx, ports.RoleDriver, notifier.EventOrderDeleted, notifier.Payload{})

		sink.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
