package visibility

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Loader fetches the full blocked-account set for a viewer from the backing
// store.
type Loader func(ctx context.Context) ([]uuid.UUID, error)

// Blocklist is the in-memory blocked-account set for one viewer. Add and
// Remove are optimistic and local-only; persisting the change is the caller's
// job. A failed Load keeps the prior set so transient backend errors never
// unblock content.
type Blocklist struct {
	mu     sync.RWMutex
	ids    BlockSet
	loaded bool
}

func NewBlocklist() *Blocklist {
	return &Blocklist{ids: make(BlockSet)}
}

// Load replaces the set with the loader's result. On error the prior set is
// retained and the failure is only logged.
func (b *Blocklist) Load(ctx context.Context, load Loader) {
	ids, err := load(ctx)
	if err != nil {
		slog.Warn("blocklist load failed, keeping prior set", "error", err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.ids = NewBlockSet(ids...)
	b.loaded = true
}

// Loaded reports whether a Load has ever succeeded.
func (b *Blocklist) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

// Add records id as blocked, immediately visible to readers.
func (b *Blocklist) Add(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ids[id] = struct{}{}
}

// Remove forgets id.
func (b *Blocklist) Remove(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.ids, id)
}

// IsBlocked reports whether id is currently blocked.
func (b *Blocklist) IsBlocked(id uuid.UUID) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ids.Has(id)
}

// Snapshot returns a copy of the current set, safe to hand to the pure
// filter functions while the store keeps mutating.
func (b *Blocklist) Snapshot() BlockSet {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(BlockSet, len(b.ids))
	for id := range b.ids {
		out[id] = struct{}{}
	}
	return out
}

// Blocklists keeps one Blocklist per viewer for the life of the process.
type Blocklists struct {
	mu sync.Mutex
	m  map[uuid.UUID]*Blocklist
}

func NewBlocklists() *Blocklists {
	return &Blocklists{m: make(map[uuid.UUID]*Blocklist)}
}

// For returns the viewer's blocklist, creating it on first use.
func (c *Blocklists) For(viewerID uuid.UUID) *Blocklist {
	c.mu.Lock()
	defer c.mu.Unlock()
	bl, ok := c.m[viewerID]
	if !ok {
		bl = NewBlocklist()
		c.m[viewerID] = bl
	}
	return bl
}

// Drop discards the viewer's blocklist (account deletion).
func (c *Blocklists) Drop(viewerID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, viewerID)
}
