package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pairchat/pairchat/internal/chat"
)

// AdminLoader loads the admin record. Satisfied by *Store.
type AdminLoader interface {
	Admin(ctx context.Context) (*AdminRecord, error)
}

// BlacklistCache is a chat.BlacklistSource backed by the admin record. The
// relay consults the blacklist on every chat message, so Blacklist only ever
// returns the in-memory snapshot; a background goroutine refreshes it once
// per TTL. When the database is unreachable the last good value (or the seed
// list) stays in effect; losing masking briefly is preferable to dropping
// chat.
type BlacklistCache struct {
	loader AdminLoader
	ttl    time.Duration

	mu    sync.RWMutex
	words []string

	stopCh chan struct{}
}

// NewBlacklistCache creates a cache with the given refresh interval and
// starts its refresh goroutine. seed provides the initial word list used
// until the first successful refresh. Callers must Stop the cache when done.
func NewBlacklistCache(loader AdminLoader, ttl time.Duration, seed []string) *BlacklistCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	b := &BlacklistCache{
		loader: loader,
		ttl:    ttl,
		words:  seed,
		stopCh: make(chan struct{}),
	}
	go b.refreshLoop()
	return b
}

// Blacklist returns the current word list. Never blocks on the database.
func (b *BlacklistCache) Blacklist() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.words
}

// Stop stops the refresh goroutine.
func (b *BlacklistCache) Stop() {
	close(b.stopCh)
}

func (b *BlacklistCache) refreshLoop() {
	ticker := time.NewTicker(b.ttl)
	defer ticker.Stop()

	b.refresh()
	for {
		select {
		case <-ticker.C:
			b.refresh()
		case <-b.stopCh:
			return
		}
	}
}

func (b *BlacklistCache) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	admin, err := b.loader.Admin(ctx)
	if err != nil {
		slog.Warn("blacklist refresh failed, keeping cached value", "error", err)
		return
	}
	if admin == nil {
		return
	}

	words := chat.ParseBlacklist(admin.WordBlacklist)
	b.mu.Lock()
	b.words = words
	b.mu.Unlock()
}
