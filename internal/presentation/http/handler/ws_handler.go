package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hostalia/roomservice-api/internal/presentation/http/middleware"
	"github.com/hostalia/roomservice-api/internal/realtime"
)

// WSHandler upgrades dashboard connections and binds them to their hotel room
type WSHandler struct {
	hub    *realtime.Hub
	logger *zap.Logger

	upgrader websocket.Upgrader
}

// NewWSHandler creates a new websocket handler
func NewWSHandler(hub *realtime.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin checking is the CORS layer's job; tokens gate the route
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve handles GET /api/v1/hotels/:hotelId/ws
func (h *WSHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	realtime.NewClient(h.hub, conn, middleware.GetHotelID(c), h.logger)
}
