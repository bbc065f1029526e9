// Package ws provides the WebSocket transport: a Connection adapter backing
// the presence registry and the upgrade handler wiring inbound driver
// position reports into the application layer.
package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/gorilla/websocket"
)

const (
	// writeWait bounds a single frame write. A peer that cannot keep up
	// within this window is considered dead.
	writeWait = 10 * time.Second

	// pongWait is how long the read side waits for a pong before tearing
	// the connection down. pingInterval must stay below it.
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second

	maxMessageSize = 4096
	sendBufferSize = 64
)

// ErrConnectionClosed is returned by Send after the connection was torn down.
var ErrConnectionClosed = errors.New("connection is closed")

// ErrSendBufferFull is returned when the peer is too slow to drain its send
// queue. The router treats it like any send failure and prunes the handle.
var ErrSendBufferFull = errors.New("connection send buffer is full")

// envelope is the wire frame for every outbound and inbound message.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Connection adapts a single gorilla/websocket session to the Connection
// port. All writes funnel through a buffered channel drained by a single
// writer goroutine, which keeps per-connection delivery ordered and
// serializes access to the underlying socket.
type Connection struct {
	id   kernel.UUID
	conn *websocket.Conn
	send chan []byte

	closeOnce sync.Once
	closed    chan struct{}
}

var _ ports.Connection = (*Connection)(nil)

func newConnection(conn *websocket.Conn) *Connection {
	return &Connection{
		id:     kernel.NewUUID(),
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		closed: make(chan struct{}),
	}
}

// ID returns the unique connection handle.
func (c *Connection) ID() kernel.UUID {
	return c.id
}

// Send enqueues an event frame for delivery. It never blocks: a full buffer
// means the peer stopped reading, and the caller is expected to prune the
// connection.
func (c *Connection) Send(event string, payload []byte) error {
	frame, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		return err
	}

	select {
	case <-c.closed:
		return ErrConnectionClosed
	default:
	}

	select {
	case c.send <- frame:
		return nil
	case <-c.closed:
		return ErrConnectionClosed
	default:
		return ErrSendBufferFull
	}
}

// Close tears the connection down. Safe to call more than once.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		close(c.closed)
		_ = c.conn.Close()
	})
	return nil
}

// writePump is the single writer goroutine: it drains the send queue and
// keeps the connection alive with periodic pings. It owns all writes to the
// underlying socket.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.closed:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
