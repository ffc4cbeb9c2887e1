package chat

import "github.com/google/uuid"

// Sink delivers one server event to a connection. Implementations must not
// block: the engine calls Send while holding its lock. The return value
// reports whether the event was accepted (an unreachable sink returns false
// and is skipped, never treated as an error).
type Sink interface {
	Send(v any) bool
}

// Client is the engine's record of one live connection. partnerID is a pure
// lookup key into the registry, never an owning reference; it is either empty
// on both sides of a former pair or mutual on both sides of a current one.
type Client struct {
	ID        string
	sink      Sink
	partnerID string
	interests []string
}

// PartnerID returns the id of the current partner, or "" when unpaired.
func (c *Client) PartnerID() string {
	return c.partnerID
}

// Interests returns the tags supplied at the last join/next.
func (c *Client) Interests() []string {
	return c.interests
}

// Registry is the authoritative id -> Client map: the single source of truth
// for who is connected. It performs no locking of its own; the owning Engine
// serializes all access.
type Registry struct {
	clients map[string]*Client
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*Client)}
}

// Register creates a Client with a fresh id and no partner, inserts it and
// returns it. It never fails.
func (r *Registry) Register(sink Sink) *Client {
	c := &Client{ID: uuid.NewString(), sink: sink}
	r.clients[c.ID] = c
	return c
}

// Unregister removes the Client. Idempotent: transports can double-fire
// close/error, so a second call for the same id is a no-op. Returns whether
// an entry was removed.
func (r *Registry) Unregister(id string) bool {
	if _, ok := r.clients[id]; !ok {
		return false
	}
	delete(r.clients, id)
	return true
}

// Get returns the Client for id, or nil if it is unknown. An unknown id is a
// normal condition (messages race with disconnects), not an error.
func (r *Registry) Get(id string) *Client {
	return r.clients[id]
}

// Size returns the current connection count.
func (r *Registry) Size() int {
	return len(r.clients)
}

// Each calls fn for every registered client.
func (r *Registry) Each(fn func(*Client)) {
	for _, c := range r.clients {
		fn(c)
	}
}
