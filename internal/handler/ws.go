package handler

import (
	"log/slog"
	"net/http"

	ws "github.com/gorilla/websocket"
	"github.com/pairchat/pairchat/internal/chat"
	"github.com/pairchat/pairchat/internal/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to configured CORS origins once the web client
		// ships from a fixed domain.
		return true
	},
}

// WSHandler upgrades chat connections and hands them to the pairing engine.
type WSHandler struct {
	engine *chat.Engine
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(engine *chat.Engine) *WSHandler {
	return &WSHandler{engine: engine}
}

// Serve upgrades HTTP to WebSocket and starts the connection's pumps. From
// here on the connection belongs to the engine until transport close.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	client := websocket.NewClient(h.engine, conn)
	client.Start()
}
