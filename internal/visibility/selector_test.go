package visibility

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func tagList(ids ...uuid.UUID) datatypes.JSONSlice[uuid.UUID] {
	return datatypes.JSONSlice[uuid.UUID](ids)
}

func at(minutesAgo int) time.Time {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(-time.Duration(minutesAgo) * time.Minute)
}

func TestUpdatesForPersonDropsSoftDeleted(t *testing.T) {
	person := uuid.New()
	deleted := models.Update{
		ID:        uuid.New(),
		PersonID:  person,
		CreatedAt: at(0),
		DeletedAt: gorm.DeletedAt{Time: at(0), Valid: true},
	}
	live := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(1)}

	got := UpdatesForPerson([]models.Update{deleted, live}, person, nil, true, nil)
	if len(got) != 1 || got[0].ID != live.ID {
		t.Fatalf("expected only the live update, got %d", len(got))
	}
}

func TestUpdatesForPersonOwnSubsetRules(t *testing.T) {
	person := uuid.New()
	other := uuid.New()

	noTags := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(1)}
	selfTagged := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(2), TaggedPersonIDs: tagList(person, other)}
	// on own wall but about someone else: excluded from the wall entirely
	aboutOthers := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(3), TaggedPersonIDs: tagList(other)}

	got := UpdatesForPerson([]models.Update{noTags, selfTagged, aboutOthers}, person, nil, true, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(got))
	}
	for _, u := range got {
		if u.ID == aboutOthers.ID {
			t.Fatal("update tagging only others must not appear in own wall")
		}
	}
}

func TestUpdatesForPersonTaggedSubset(t *testing.T) {
	person := uuid.New()
	otherWall := uuid.New()
	hiddenID := uuid.New()

	people := map[uuid.UUID]models.Person{
		person: {ID: person, HiddenTaggedUpdateIDs: tagList(hiddenID)},
	}

	tagged := models.Update{ID: uuid.New(), PersonID: otherWall, CreatedAt: at(1), TaggedPersonIDs: tagList(person)}
	hidden := models.Update{ID: hiddenID, PersonID: otherWall, CreatedAt: at(2), TaggedPersonIDs: tagList(person)}
	unrelated := models.Update{ID: uuid.New(), PersonID: otherWall, CreatedAt: at(3)}
	all := []models.Update{tagged, hidden, unrelated}

	got := UpdatesForPerson(all, person, people, true, nil)
	if len(got) != 1 || got[0].ID != tagged.ID {
		t.Fatalf("expected only the visible tagged update, got %d", len(got))
	}

	got = UpdatesForPerson(all, person, people, false, nil)
	if len(got) != 0 {
		t.Fatal("includeTagged=false must exclude tagged updates")
	}
}

func TestUpdatesForPersonBlockedExclusion(t *testing.T) {
	person := uuid.New()
	blockedUser := uuid.New()

	own := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(1)}
	fromBlocked := models.Update{ID: uuid.New(), PersonID: person, CreatedBy: blockedUser, CreatedAt: at(0)}

	got := UpdatesForPerson([]models.Update{fromBlocked, own}, person, nil, true, NewBlockSet(blockedUser))
	if len(got) != 1 || got[0].ID != own.ID {
		t.Fatal("update from blocked author must be excluded")
	}
}

func TestUpdatesForPersonOrderingAndStability(t *testing.T) {
	person := uuid.New()

	oldest := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(30)}
	tieA := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(10)}
	tieB := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(10)}
	newest := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(1)}

	got := UpdatesForPerson([]models.Update{oldest, tieA, tieB, newest}, person, nil, true, nil)

	want := []uuid.UUID{newest.ID, tieA.ID, tieB.ID, oldest.ID}
	if len(got) != len(want) {
		t.Fatalf("expected %d updates, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: wrong update (ties must keep input order)", i)
		}
	}
}

func TestUpdatesForPersonDeduplicates(t *testing.T) {
	person := uuid.New()
	u := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(1), TaggedPersonIDs: tagList(person)}

	got := UpdatesForPerson([]models.Update{u, u}, person, nil, true, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 update after dedupe, got %d", len(got))
	}
}

func TestUpdatesForPersonDoesNotMutateInput(t *testing.T) {
	person := uuid.New()
	first := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(30)}
	second := models.Update{ID: uuid.New(), PersonID: person, CreatedAt: at(1)}
	all := []models.Update{first, second}

	UpdatesForPerson(all, person, nil, true, nil)
	if all[0].ID != first.ID || all[1].ID != second.ID {
		t.Fatal("input slice was reordered")
	}
}
