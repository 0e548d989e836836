// Package coppa gates the service on the account-level age-policy flag. The
// flag lives in the users table; the gate memoizes lookups so hot paths do
// not hit the database on every request.
package coppa

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a cached verdict stays valid.
const DefaultTTL = 5 * time.Minute

// Flags are the moderation flags attached to an account.
type Flags struct {
	Blocked bool
}

// FlagSource fetches the current account flags for a user.
type FlagSource interface {
	AccountFlags(ctx context.Context, userID uuid.UUID) (Flags, error)
}

type entry struct {
	blocked   bool
	fetchedAt time.Time
}

// Gate answers "is this viewer blocked for age-policy reasons" with a
// time-bounded per-user cache. Lookups that fail never block access (the gate
// fails open) and the failure is not cached, so the next call retries.
//
// Concurrent calls for the same user before the first completes each issue
// their own lookup; the operation is idempotent and cheap, so there is no
// in-flight coalescing.
type Gate struct {
	src FlagSource
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[uuid.UUID]entry
}

// Option configures a Gate.
type Option func(*Gate)

// WithTTL overrides the cache expiry.
func WithTTL(ttl time.Duration) Option {
	return func(g *Gate) { g.ttl = ttl }
}

// WithClock injects the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

func NewGate(src FlagSource, opts ...Option) *Gate {
	g := &Gate{
		src:     src,
		ttl:     DefaultTTL,
		now:     time.Now,
		entries: make(map[uuid.UUID]entry),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsBlocked reports whether the user is blocked by age policy. Cached
// verdicts older than the TTL are treated as absent.
func (g *Gate) IsBlocked(ctx context.Context, userID uuid.UUID) bool {
	now := g.now()

	g.mu.Lock()
	if e, ok := g.entries[userID]; ok && now.Sub(e.fetchedAt) <= g.ttl {
		g.mu.Unlock()
		return e.blocked
	}
	g.mu.Unlock()

	flags, err := g.src.AccountFlags(ctx, userID)
	if err != nil {
		slog.Warn("coppa flag lookup failed, failing open", "user_id", userID, "error", err)
		return false
	}

	g.mu.Lock()
	g.entries[userID] = entry{blocked: flags.Blocked, fetchedAt: now}
	g.mu.Unlock()
	return flags.Blocked
}

// Clear drops one user's cached verdict (account deletion flows).
func (g *Gate) Clear(userID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, userID)
}

// ClearAll empties the cache.
func (g *Gate) ClearAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = make(map[uuid.UUID]entry)
}
