package chat

import "encoding/json"

// Relay methods forward payloads between the two members of an active pair.
// A missing sender or partner means the frame raced a teardown; it is
// dropped silently in every case, never surfaced as an error.

// RelaySignal forwards an opaque negotiation payload (SDP offer/answer, ICE
// candidate) to the sender's partner verbatim. The payload structure is
// never inspected.
func (e *Engine) RelaySignal(fromID string, data json.RawMessage) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if partner := e.partnerOf(fromID); partner != nil {
		partner.sink.Send(NewSignalEvent(data))
	}
}

// RelayTyping forwards a typing indicator to the sender's partner.
func (e *Engine) RelayTyping(fromID string, isTyping bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if partner := e.partnerOf(fromID); partner != nil {
		partner.sink.Send(NewTypingEvent(isTyping))
	}
}

// RelayMessage masks blacklisted terms in content and forwards it to the
// sender's partner. Masking runs before the engine lock is taken: the word
// source may be slow (a cache miss, a stuck backend) and must never stall
// pairing operations.
func (e *Engine) RelayMessage(fromID string, content string) {
	masked := e.filter.Mask(content)

	e.mu.Lock()
	defer e.mu.Unlock()

	if partner := e.partnerOf(fromID); partner != nil {
		partner.sink.Send(NewMessageEvent(masked))
	}
}

// partnerOf resolves the sender's current partner, or nil when the sender is
// gone, unpaired, or the partner has already disconnected. Callers hold e.mu.
func (e *Engine) partnerOf(fromID string) *Client {
	from := e.registry.Get(fromID)
	if from == nil || from.partnerID == "" {
		return nil
	}
	return e.registry.Get(from.partnerID)
}
