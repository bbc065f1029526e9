package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestConnection spins up a loopback websocket pair and returns the
// server-side Connection plus the client-side raw conn.
func dialTestConnection(t *testing.T) (*Connection, *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	connCh := make(chan *Connection, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wsConn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		connCh <- newConnection(wsConn)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	peer, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = peer.Close() })

	conn := <-connCh
	t.Cleanup(func() { _ = conn.Close() })

	return conn, peer
}

func TestConnection_Send_DeliversEnvelopeFrames(t *testing.T) {
	conn, peer := dialTestConnection(t)
	go conn.writePump()

	require.NoError(t, conn.Send("orderAccepted", []byte(`{"orderId":"o-1"}`)))
	require.NoError(t, conn.Send("rideEnded", []byte(`{"orderId":"o-1"}`)))

	require.NoError(t, peer.SetReadDeadline(time.Now().Add(2*time.Second)))

	var first envelope
	_, raw, err := peer.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &first))
	assert.Equal(t, "orderAccepted", first.Event)
	assert.JSONEq(t, `{"orderId":"o-1"}`, string(first.Data))

	// Delivery order matches enqueue order.
	var second envelope
	_, raw, err = peer.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &second))
	assert.Equal(t, "rideEnded", second.Event)
}

func TestConnection_Send_AfterClose_ReturnsError(t *testing.T) {
	conn, _ := dialTestConnection(t)

	require.NoError(t, conn.Close())

	err := conn.Send("newOrder", []byte(`{}`))
	assert.ErrorIs(t, err, ErrConnectionClosed)
}

func TestConnection_Send_BufferFull_ReturnsError(t *testing.T) {
	conn, _ := dialTestConnection(t)
	// No writePump: nothing drains the queue.

	var err error
	for range sendBufferSize + 1 {
		if err = conn.Send("newOrder", []byte(`{}`)); err != nil {
			break
		}
	}

	assert.ErrorIs(t, err, ErrSendBufferFull)
}

func TestConnection_Close_Idempotent(t *testing.T) {
	conn, _ := dialTestConnection(t)

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
}

func TestConnection_DistinctHandles(t *testing.T) {
	first, _ := dialTestConnection(t)
	second, _ := dialTestConnection(t)

	assert.NotEqual(t, first.ID(), second.ID())
}
