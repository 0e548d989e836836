package coppa

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeSource struct {
	flags map[uuid.UUID]Flags
	err   error
	calls int
}

func (f *fakeSource) AccountFlags(_ context.Context, userID uuid.UUID) (Flags, error) {
	f.calls++
	if f.err != nil {
		return Flags{}, f.err
	}
	return f.flags[userID], nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGate(src *fakeSource) (*Gate, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewGate(src, WithClock(clock.now)), clock
}

func TestGateCachesWithinTTL(t *testing.T) {
	user := uuid.New()
	src := &fakeSource{flags: map[uuid.UUID]Flags{user: {Blocked: true}}}
	gate, clock := newTestGate(src)
	ctx := context.Background()

	if !gate.IsBlocked(ctx, user) {
		t.Fatal("expected blocked")
	}
	if !gate.IsBlocked(ctx, user) {
		t.Fatal("expected blocked from cache")
	}
	if src.calls != 1 {
		t.Fatalf("expected exactly 1 lookup within TTL, got %d", src.calls)
	}

	clock.advance(DefaultTTL + time.Millisecond)
	gate.IsBlocked(ctx, user)
	if src.calls != 2 {
		t.Fatalf("expected a second lookup after expiry, got %d", src.calls)
	}
}

func TestGateFailsOpenAndDoesNotCacheFailure(t *testing.T) {
	user := uuid.New()
	src := &fakeSource{err: errors.New("backend down")}
	gate, _ := newTestGate(src)
	ctx := context.Background()

	if gate.IsBlocked(ctx, user) {
		t.Fatal("lookup failure must fail open")
	}

	// Backend recovers: the next call must retry, not serve a cached failure.
	src.err = nil
	src.flags = map[uuid.UUID]Flags{user: {Blocked: true}}
	if !gate.IsBlocked(ctx, user) {
		t.Fatal("recovered lookup must be consulted")
	}
	if src.calls != 2 {
		t.Fatalf("expected 2 lookups, got %d", src.calls)
	}
}

func TestGateClear(t *testing.T) {
	user := uuid.New()
	other := uuid.New()
	src := &fakeSource{flags: map[uuid.UUID]Flags{user: {Blocked: true}}}
	gate, _ := newTestGate(src)
	ctx := context.Background()

	gate.IsBlocked(ctx, user)
	gate.IsBlocked(ctx, other)
	gate.Clear(user)

	gate.IsBlocked(ctx, user)
	if src.calls != 3 {
		t.Fatalf("Clear must force a fresh lookup, got %d calls", src.calls)
	}

	gate.IsBlocked(ctx, other)
	if src.calls != 3 {
		t.Fatal("Clear must not touch other entries")
	}

	gate.ClearAll()
	gate.IsBlocked(ctx, other)
	if src.calls != 4 {
		t.Fatal("ClearAll must empty the cache")
	}
}

func TestGateDefaultTTLIsFiveMinutes(t *testing.T) {
	if DefaultTTL != 5*time.Minute {
		t.Fatalf("DefaultTTL = %v", DefaultTTL)
	}
}
