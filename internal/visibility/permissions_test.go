package visibility

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/google/uuid"
)

func TestResolvePermissionsOwnUpdate(t *testing.T) {
	me := uuid.New()
	ego := uuid.New()
	u := models.Update{ID: uuid.New(), CreatedBy: me, PersonID: ego}

	p := ResolvePermissions(u, &me, ego, ego)

	if !p.CanEdit || !p.CanDelete || !p.CanChangeVisibility {
		t.Fatalf("author must get edit/delete/visibility: %+v", p)
	}
	if p.CanReject {
		t.Fatal("CanReject must always be false")
	}
	if !p.ShowMenuButton || !p.CanReport {
		t.Fatal("menu and report are always available")
	}
	if p.CanToggleTaggedVisibility {
		t.Fatal("author branch must not grant tag toggling")
	}
}

func TestResolvePermissionsTaggedOnOwnWall(t *testing.T) {
	me := uuid.New()
	author := uuid.New()
	ego := uuid.New()
	otherWall := uuid.New()
	u := models.Update{
		ID:              uuid.New(),
		CreatedBy:       author,
		PersonID:        otherWall,
		TaggedPersonIDs: tagList(ego),
	}

	p := ResolvePermissions(u, &me, ego, ego)

	if !p.CanToggleTaggedVisibility {
		t.Fatalf("tagged viewer on own wall must toggle tag visibility: %+v", p)
	}
	if p.CanEdit || p.CanDelete || p.CanChangeVisibility {
		t.Fatal("tagged viewer must not edit someone else's update")
	}

	// Same update viewed on the author's wall: no toggle.
	p = ResolvePermissions(u, &me, otherWall, ego)
	if p.CanToggleTaggedVisibility {
		t.Fatal("toggle only applies when viewing one's own wall")
	}
}

func TestResolvePermissionsAnonymous(t *testing.T) {
	u := models.Update{ID: uuid.New(), CreatedBy: uuid.New()}

	p := ResolvePermissions(u, nil, uuid.Nil, uuid.Nil)

	if !p.ShowMenuButton || !p.CanReport {
		t.Fatalf("anonymous viewers still get a report-only menu: %+v", p)
	}
	if p.CanEdit || p.CanDelete || p.CanChangeVisibility || p.CanToggleTaggedVisibility || p.CanReject {
		t.Fatalf("anonymous viewers get nothing else: %+v", p)
	}
}

func TestResolvePermissionsSomeoneElses(t *testing.T) {
	me := uuid.New()
	ego := uuid.New()
	u := models.Update{ID: uuid.New(), CreatedBy: uuid.New(), PersonID: uuid.New()}

	p := ResolvePermissions(u, &me, uuid.New(), ego)

	want := Permissions{ShowMenuButton: true, CanReport: true}
	if p != want {
		t.Fatalf("got %+v, want %+v", p, want)
	}
}

func TestHelperPredicatesMatchResolver(t *testing.T) {
	me := uuid.New()
	ego := uuid.New()
	own := models.Update{ID: uuid.New(), CreatedBy: me}
	tagged := models.Update{ID: uuid.New(), CreatedBy: uuid.New(), PersonID: uuid.New(), TaggedPersonIDs: tagList(ego)}

	if !IsOwnedBy(own, me) {
		t.Fatal("IsOwnedBy disagrees with resolver's own branch")
	}
	if IsOwnedBy(models.Update{}, uuid.Nil) {
		t.Fatal("zero CreatedBy must match no one")
	}
	if !IsTaggedIn(tagged, ego) {
		t.Fatal("IsTaggedIn disagrees with resolver's tagged branch")
	}
	if IsTaggedIn(tagged, uuid.Nil) {
		t.Fatal("nil ego is never tagged")
	}
}
