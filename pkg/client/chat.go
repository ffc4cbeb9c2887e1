package client

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// ChatEvent is one server frame from a chat session. Type is always set;
// the remaining fields depend on it.
type ChatEvent struct {
	Type      string          `json:"type"`
	Initiator bool            `json:"initiator,omitempty"`
	Interests []string        `json:"interests,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Content   string          `json:"content,omitempty"`
	IsTyping  bool            `json:"isTyping,omitempty"`
	Count     int             `json:"count,omitempty"`
}

// ChatSession is a live connection to the chat endpoint.
type ChatSession struct {
	conn    *websocket.Conn
	events  chan *ChatEvent
	errors  chan error
	writeMu sync.Mutex
	closed  bool
	closeMu sync.Mutex
}

// Chat opens a chat session. The caller drives matchmaking with Join, Next
// and Leave, and receives server frames on Events until the connection drops
// or Close is called.
func (c *Client) Chat(ctx context.Context) (*ChatSession, error) {
	wsURL := strings.Replace(c.server, "http://", "ws://", 1)
	wsURL = strings.Replace(wsURL, "https://", "wss://", 1)
	wsURL += "/ws"

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	s := &ChatSession{
		conn:   conn,
		events: make(chan *ChatEvent, 100),
		errors: make(chan error, 1),
	}

	go s.readPump()
	go s.pingLoop()

	return s, nil
}

// Events returns the server frame channel. Closed when the session ends.
func (s *ChatSession) Events() <-chan *ChatEvent {
	return s.events
}

// Errors reports the read error that ended the session, if any.
func (s *ChatSession) Errors() <-chan error {
	return s.errors
}

// Join enters the waiting pool with the given interest tags.
func (s *ChatSession) Join(interests []string) error {
	return s.send(map[string]any{"type": "join", "interests": interests})
}

// Next abandons the current partner and rejoins the pool.
func (s *ChatSession) Next(interests []string) error {
	return s.send(map[string]any{"type": "next", "interests": interests})
}

// Leave returns to idle without rejoining the pool.
func (s *ChatSession) Leave() error {
	return s.send(map[string]any{"type": "leave"})
}

// SendSignal relays an opaque negotiation payload to the partner.
func (s *ChatSession) SendSignal(data json.RawMessage) error {
	return s.send(map[string]any{"type": "signal", "data": data})
}

// SendMessage relays a text message to the partner.
func (s *ChatSession) SendMessage(content string) error {
	return s.send(map[string]any{"type": "message", "content": content})
}

// SendTyping relays a typing indicator to the partner.
func (s *ChatSession) SendTyping(isTyping bool) error {
	return s.send(map[string]any{"type": "typing", "isTyping": isTyping})
}

// Close tears down the session. Safe to call more than once.
func (s *ChatSession) Close() error {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	s.writeMu.Lock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	s.writeMu.Unlock()

	return s.conn.Close()
}

func (s *ChatSession) isClosed() bool {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	return s.closed
}

func (s *ChatSession) send(v any) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(v)
}

func (s *ChatSession) readPump() {
	defer close(s.events)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !s.isClosed() {
				select {
				case s.errors <- err:
				default:
				}
			}
			return
		}

		var event ChatEvent
		if err := json.Unmarshal(data, &event); err != nil {
			continue
		}

		select {
		case s.events <- &event:
		default:
			// Slow consumer, drop the frame.
		}
	}
}

func (s *ChatSession) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for range ticker.C {
		if s.isClosed() {
			return
		}
		s.writeMu.Lock()
		s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := s.conn.WriteMessage(websocket.PingMessage, nil)
		s.writeMu.Unlock()
		if err != nil {
			return
		}
	}
}
