package handler

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/logger"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/metrics"
	ws "github.com/vahanex/vahanex-server/pkg/wsHub"
)

// Board upgrades dashboard clients to WebSocket and registers them on the
// connection hub so schedule mutations can be pushed as board_update frames.
type Board struct {
	serviceName string
	connections *ws.ConnectionHub
	l           logger.Logger

	upgrader websocket.Upgrader
}

func NewBoard(serviceName string, connHub *ws.ConnectionHub, l logger.Logger) *Board {
	return &Board{
		serviceName: serviceName,
		connections: connHub,
		l:           l,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The dashboard is served from a different origin in development.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Board) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "board_subscribe")

	user := models.UserFromContext(ctx)
	if user == nil || user.IsAnonymous() {
		errorResponse(w, http.StatusUnauthorized, "authorization required")
		return
	}

	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to upgrade board connection", err)
		return
	}

	conn := ws.NewConn(ctx, user.ID, wsConn)
	if err := h.connections.Add(conn); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to register board connection", err)
		conn.Close()
		return
	}

	metrics.BoardConnectionsGauge.WithLabelValues(h.serviceName).Inc()
	h.l.Info(ctx, "board client connected", "user_id", user.ID)

	defer func() {
		metrics.BoardConnectionsGauge.WithLabelValues(h.serviceName).Dec()
		if err := h.connections.Delete(user.ID); err != nil {
			h.l.Debug(ctx, "board connection already removed", "user_id", user.ID)
		}
		h.l.Info(ctx, "board client disconnected", "user_id", user.ID)
	}()

	// The board is push-only. Reads keep the connection alive and surface
	// client disconnects; inbound frames are discarded.
	if err := conn.Listen(func(msg any) error { return nil }); err != nil {
		h.l.Debug(ctx, "board listen finished", "user_id", user.ID, "reason", err.Error())
	}
}
