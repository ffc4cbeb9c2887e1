package websocket

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pairchat/pairchat/internal/chat"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client pumps frames between one WebSocket connection and the pairing
// engine. It is the engine's Sink for this connection: outbound events go
// through the buffered send channel so the engine never blocks on a slow
// socket.
type Client struct {
	engine *chat.Engine
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	id     string
}

// NewClient wraps an upgraded connection. Start must be called to register
// with the engine and begin pumping.
func NewClient(engine *chat.Engine, conn *websocket.Conn) *Client {
	return &Client{
		engine: engine,
		conn:   conn,
		send:   make(chan []byte, 256),
		done:   make(chan struct{}),
	}
}

// Start registers the connection with the engine and starts the read/write
// pumps in their own goroutines.
func (c *Client) Start() {
	c.id = c.engine.Connect(c)
	go c.writePump()
	go c.readPump()
}

// ID returns the engine-assigned client id.
func (c *Client) ID() string {
	return c.id
}

// Send marshals an engine event onto the outbound channel. A full buffer
// drops the event rather than blocking the engine; the client self-heals on
// its next join/next.
func (c *Client) Send(v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal outbound event", "error", err)
		return false
	}

	select {
	case c.send <- data:
		return true
	default:
		slog.Warn("client send buffer full, dropping event", "client_id", c.id)
		return false
	}
}

// readPump reads inbound frames and dispatches them into the engine. It is
// the only reader on the connection. On any read error it runs the full
// disconnect teardown; the engine tolerates the double-fire when writePump
// closes the socket too.
func (c *Client) readPump() {
	defer func() {
		c.engine.Disconnect(c.id)
		c.conn.Close()
		close(c.done)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("websocket read error", "client_id", c.id, "error", err)
			}
			return
		}
		c.dispatch(message)
	}
}

// writePump writes outbound frames and keepalive pings. It is the only
// writer on the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			// readPump finished its teardown; don't linger until the
			// next ping fails.
			return
		}
	}
}

// dispatch decodes one inbound frame and routes it. A malformed frame or
// unknown type is logged and dropped; one bad frame never costs the user
// their session.
func (c *Client) dispatch(data []byte) {
	var ev chat.ClientEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		slog.Warn("dropping malformed frame", "client_id", c.id, "error", err)
		return
	}

	switch ev.Type {
	case chat.EventJoin:
		c.engine.Join(c.id, ev.Interests)
	case chat.EventNext:
		c.engine.Next(c.id, ev.Interests)
	case chat.EventLeave:
		c.engine.Leave(c.id)
	case chat.EventSignal:
		c.engine.RelaySignal(c.id, ev.Data)
	case chat.EventMessage:
		c.engine.RelayMessage(c.id, ev.Content)
	case chat.EventTyping:
		c.engine.RelayTyping(c.id, ev.IsTyping)
	default:
		slog.Warn("dropping frame with unknown type", "client_id", c.id, "type", ev.Type)
	}
}
