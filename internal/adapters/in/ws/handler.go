package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// LocationCommandHandler processes inbound driver position reports.
// Satisfied by commands.UpdateDriverLocationCommandHandler.
type LocationCommandHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateDriverLocationCommand) error
}

// Handler upgrades HTTP requests to WebSocket sessions, registers them with
// the presence registry, and pumps inbound messages into the application
// layer. One user may hold several sessions at once; each gets its own
// connection handle.
type Handler struct {
	presence       ports.PresenceRegistry
	locations      ports.LocationCache
	updateLocation LocationCommandHandler
	logger         *slog.Logger
	upgrader       websocket.Upgrader
}

// NewHandler creates the WebSocket upgrade handler.
func NewHandler(
	presence ports.PresenceRegistry,
	locations ports.LocationCache,
	updateLocation LocationCommandHandler,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		presence:       presence,
		locations:      locations,
		updateLocation: updateLocation,
		logger:         logger.With("component", "ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// Register mounts the upgrade route on the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/ws", h.serve)
}

// serve upgrades the request and runs the session until the peer goes away.
// Identity comes from the user_id and role query parameters; authentication
// is handled upstream.
func (h *Handler) serve(c echo.Context) error {
	userID, err := kernel.UUIDFromString(c.QueryParam("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	role := roleFromString(c.QueryParam("role"))
	if role == ports.RoleUnknown {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be client or driver")
	}

	wsConn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return nil
	}

	conn := newConnection(wsConn)
	h.presence.Connect(userID, role, conn)
	h.logger.Info("session opened",
		"conn_id", conn.ID().String(),
		"user_id", userID.String(),
		"role", role.String(),
	)

	go conn.writePump()
	h.readPump(userID, role, conn)

	return nil
}

// readPump reads inbound frames until the connection dies, then deregisters
// the handle. Runs on the handler goroutine so echo keeps the request scope
// alive for the session's lifetime.
func (h *Handler) readPump(userID kernel.UUID, role ports.Role, conn *Connection) {
	defer func() {
		h.presence.Disconnect(conn.ID())
		_ = conn.Close()
		h.dropDriverLocationIfOffline(userID, role)
		h.logger.Info("session closed",
			"conn_id", conn.ID().String(),
			"user_id", userID.String(),
		)
	}()

	conn.conn.SetReadLimit(maxMessageSize)
	_ = conn.conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.conn.SetPongHandler(func(string) error {
		return conn.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("read failed", "conn_id", conn.ID().String(), "error", err)
			}
			return
		}

		var frame envelope
		if err := json.Unmarshal(raw, &frame); err != nil {
			h.logger.Warn("malformed frame", "conn_id", conn.ID().String(), "error", err)
			continue
		}

		h.handleInbound(userID, role, frame)
	}
}

// handleInbound routes one inbound frame. Unknown events are ignored so
// clients can evolve ahead of the server.
func (h *Handler) handleInbound(userID kernel.UUID, role ports.Role, frame envelope) {
	if frame.Event != "locationUpdate" || role != ports.RoleDriver {
		return
	}

	var report struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.Unmarshal(frame.Data, &report); err != nil {
		h.logger.Warn("malformed location report", "user_id", userID.String(), "error", err)
		return
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(userID, report.Lat, report.Lng)
	if err != nil {
		h.logger.Warn("invalid location report", "user_id", userID.String(), "error", err)
		return
	}

	if err := h.updateLocation.Handle(context.Background(), cmd); err != nil {
		h.logger.Error("location update failed", "user_id", userID.String(), "error", err)
	}
}

// dropDriverLocationIfOffline removes the driver from the proximity index
// once their last session is gone, so the matcher stops offering them work.
func (h *Handler) dropDriverLocationIfOffline(userID kernel.UUID, role ports.Role) {
	if role != ports.RoleDriver || h.presence.IsOnline(userID) {
		return
	}

	if err := h.locations.RemoveDriverLocation(context.Background(), userID); err != nil {
		h.logger.Warn("failed to drop driver location", "user_id", userID.String(), "error", err)
	}
}

func roleFromString(s string) ports.Role {
	switch s {
	case "client":
		return ports.RoleClient
	case "driver":
		return ports.RoleDriver
	default:
		return ports.RoleUnknown
	}
}
