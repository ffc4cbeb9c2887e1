package chat

import "encoding/json"

// Client to server event types.
const (
	EventJoin    = "join"
	EventNext    = "next"
	EventLeave   = "leave"
	EventSignal  = "signal"
	EventMessage = "message"
	EventTyping  = "typing"
)

// ClientEvent is the envelope for all inbound frames. Unused fields stay at
// their zero value; Data is kept opaque (SDP/ICE payloads are never inspected).
type ClientEvent struct {
	Type      string          `json:"type"`
	Interests []string        `json:"interests,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Content   string          `json:"content,omitempty"`
	IsTyping  bool            `json:"isTyping,omitempty"`
}

// Server to client events.

type WaitingEvent struct {
	Type string `json:"type"`
}

type MatchedEvent struct {
	Type      string   `json:"type"`
	Initiator bool     `json:"initiator"`
	Interests []string `json:"interests,omitempty"`
}

type PartnerDisconnectedEvent struct {
	Type string `json:"type"`
}

type SignalEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type MessageEvent struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type TypingEvent struct {
	Type     string `json:"type"`
	IsTyping bool   `json:"isTyping"`
}

type OnlineCountEvent struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// NewWaitingEvent tells a client it has been enqueued with no partner yet.
func NewWaitingEvent() *WaitingEvent {
	return &WaitingEvent{Type: "waiting"}
}

// NewMatchedEvent announces a new pairing. The initiator sends the first
// negotiation offer; interests carries the tags both sides share.
func NewMatchedEvent(initiator bool, interests []string) *MatchedEvent {
	return &MatchedEvent{Type: "matched", Initiator: initiator, Interests: interests}
}

// NewPartnerDisconnectedEvent tells a client its partner left, next'd away
// or disconnected.
func NewPartnerDisconnectedEvent() *PartnerDisconnectedEvent {
	return &PartnerDisconnectedEvent{Type: "partner_disconnected"}
}

// NewSignalEvent wraps a relayed negotiation payload.
func NewSignalEvent(data json.RawMessage) *SignalEvent {
	return &SignalEvent{Type: "signal", Data: data}
}

// NewMessageEvent wraps relayed (possibly masked) chat text.
func NewMessageEvent(content string) *MessageEvent {
	return &MessageEvent{Type: "message", Content: content}
}

// NewTypingEvent wraps a relayed typing indicator.
func NewTypingEvent(isTyping bool) *TypingEvent {
	return &TypingEvent{Type: "typing", IsTyping: isTyping}
}

// NewOnlineCountEvent carries the current total connected clients.
func NewOnlineCountEvent(count int) *OnlineCountEvent {
	return &OnlineCountEvent{Type: "online_count", Count: count}
}
