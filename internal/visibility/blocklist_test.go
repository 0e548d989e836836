package visibility

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestBlocklistOptimisticAddRemove(t *testing.T) {
	bl := NewBlocklist()
	id := uuid.New()

	bl.Add(id)
	if !bl.IsBlocked(id) {
		t.Fatal("Add must be visible synchronously")
	}

	bl.Remove(id)
	if bl.IsBlocked(id) {
		t.Fatal("Remove must be visible synchronously")
	}
}

func TestBlocklistLoadReplacesSet(t *testing.T) {
	bl := NewBlocklist()
	stale := uuid.New()
	fresh := uuid.New()
	bl.Add(stale)

	bl.Load(context.Background(), func(context.Context) ([]uuid.UUID, error) {
		return []uuid.UUID{fresh}, nil
	})

	if bl.IsBlocked(stale) {
		t.Fatal("Load must replace the prior set")
	}
	if !bl.IsBlocked(fresh) {
		t.Fatal("Load must install the fetched set")
	}
	if !bl.Loaded() {
		t.Fatal("Loaded must report the successful load")
	}
}

func TestBlocklistLoadFailureKeepsPriorSet(t *testing.T) {
	bl := NewBlocklist()
	id := uuid.New()
	bl.Add(id)

	bl.Load(context.Background(), func(context.Context) ([]uuid.UUID, error) {
		return nil, errors.New("backend down")
	})

	if !bl.IsBlocked(id) {
		t.Fatal("a failed load must never unblock content")
	}
	if bl.Loaded() {
		t.Fatal("a failed load does not count as loaded")
	}
}

func TestBlocklistSnapshotIsACopy(t *testing.T) {
	bl := NewBlocklist()
	id := uuid.New()
	bl.Add(id)

	snap := bl.Snapshot()
	bl.Remove(id)

	if !snap.Has(id) {
		t.Fatal("snapshot must not see later mutations")
	}
}

func TestBlocklistsReturnsSameStorePerViewer(t *testing.T) {
	c := NewBlocklists()
	viewer := uuid.New()

	a := c.For(viewer)
	b := c.For(viewer)
	if a != b {
		t.Fatal("For must return the same store for one viewer")
	}

	a.Add(uuid.New())
	c.Drop(viewer)
	if c.For(viewer) == a {
		t.Fatal("Drop must discard the viewer's store")
	}
}
