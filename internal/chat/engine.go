package chat

import (
	"log/slog"
	"sync"
)

// Engine is the pairing state machine. It owns the Registry and WaitingPool
// and is the only component that mutates them; one coarse mutex serializes
// every event so the pairing-symmetry invariant can never be observed
// half-applied. All operations are non-blocking in-memory mutations, so the
// single lock is cheap: no I/O happens while it is held (sinks are buffered
// and drop rather than block).
//
// Per-client lifecycle: idle -> waiting -> paired -> (waiting | idle).
type Engine struct {
	mu       sync.Mutex
	registry *Registry
	pool     *WaitingPool
	filter   *MessageFilter
}

// NewEngine creates an Engine with empty state. filter may be nil to relay
// chat text unmasked.
func NewEngine(filter *MessageFilter) *Engine {
	return &Engine{
		registry: NewRegistry(),
		pool:     NewWaitingPool(),
		filter:   filter,
	}
}

// Connect registers a new connection and broadcasts the updated online count
// to everyone, including the new client. Returns the assigned id.
func (e *Engine) Connect(sink Sink) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.registry.Register(sink)
	slog.Debug("client connected", "client_id", c.ID, "online", e.registry.Size())
	e.broadcastCount()
	return c.ID
}

// Disconnect runs the full teardown path for id: unlink and notify the
// partner, drop any pool entry, unregister, broadcast the new count.
// Idempotent; transports may fire close and error for the same connection.
func (e *Engine) Disconnect(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.registry.Get(id)
	if c == nil {
		return
	}
	e.unlinkPartner(c)
	e.pool.Remove(id)
	e.registry.Unregister(id)
	slog.Debug("client disconnected", "client_id", id, "online", e.registry.Size())
	e.broadcastCount()
}

// Join enters (or re-enters) matching with the given interests. A duplicate
// join from a client already waiting is a no-op: it keeps its queue position
// and its original interests. A paired client is unpaired first, exactly as
// if it had sent next.
func (e *Engine) Join(id string, interests []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.join(id, interests, false)
}

// Next ends the current pairing, if any, and immediately seeks a new one.
// Equivalent to leave followed by join with the same interests. A waiting
// client stays in place but its interests are refreshed.
func (e *Engine) Next(id string, interests []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.join(id, interests, true)
}

// Leave ends the current pairing and stops seeking.
func (e *Engine) Leave(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.registry.Get(id)
	if c == nil {
		return
	}
	e.unlinkPartner(c)
	e.pool.Remove(id)
}

// Size returns the current connection count.
func (e *Engine) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Size()
}

// Waiting returns the number of clients currently seeking a partner.
func (e *Engine) Waiting() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pool.Len()
}

// join implements join/next under the engine lock. refresh controls whether
// a client already in the pool gets its interests replaced (next) or left
// untouched (duplicate join).
func (e *Engine) join(id string, interests []string, refresh bool) {
	c := e.registry.Get(id)
	if c == nil {
		return
	}

	if e.pool.Contains(id) {
		if refresh {
			// Refreshed interests take effect when a later candidate
			// scans the pool.
			c.interests = interests
		}
		return
	}
	c.interests = interests
	e.unlinkPartner(c)

	partner := e.pool.DequeueBestMatch(c, e.registry.Get)
	if partner == nil {
		e.pool.Enqueue(id)
		c.sink.Send(NewWaitingEvent())
		return
	}

	// Both links are set before either notification so no concurrent event
	// can observe a one-directional pair.
	c.partnerID = partner.ID
	partner.partnerID = c.ID

	shared := sharedInterests(c.interests, partner.interests)
	c.sink.Send(NewMatchedEvent(true, shared))
	partner.sink.Send(NewMatchedEvent(false, shared))
	slog.Debug("clients matched", "initiator", c.ID, "partner", partner.ID, "shared", shared)
}

// unlinkPartner clears a pairing from both sides and notifies the former
// partner once. No-op when c is unpaired, which makes every teardown path
// safe to run twice.
func (e *Engine) unlinkPartner(c *Client) {
	if c.partnerID == "" {
		return
	}
	partner := e.registry.Get(c.partnerID)
	c.partnerID = ""
	if partner == nil {
		return
	}
	partner.partnerID = ""
	partner.sink.Send(NewPartnerDisconnectedEvent())
}

// broadcastCount sends the current online count to every registered client.
// Callers hold e.mu. Unreachable sinks are skipped.
func (e *Engine) broadcastCount() {
	ev := NewOnlineCountEvent(e.registry.Size())
	e.registry.Each(func(c *Client) {
		c.sink.Send(ev)
	})
}
