package visibility

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ptr(id uuid.UUID) *uuid.UUID { return &id }

func TestRedactPeopleEmptyBlocklistReturnsInput(t *testing.T) {
	linked := uuid.New()
	people := []models.Person{
		{ID: uuid.New(), DisplayName: "Ana", LinkedUserID: ptr(linked), Bio: "bio"},
		{ID: uuid.New(), DisplayName: "Ben"},
	}

	got := RedactPeople(people, nil)
	if &got[0] != &people[0] {
		t.Fatal("expected the input slice back, got a copy")
	}
	for _, p := range got {
		if p.IsPlaceholder {
			t.Fatalf("person %s unexpectedly placeholdered", p.DisplayName)
		}
	}

	got = RedactPeople(people, BlockSet{})
	if &got[0] != &people[0] {
		t.Fatal("expected the input slice back for empty (non-nil) blocklist")
	}
}

func TestRedactPeopleShadowProfilesPassThrough(t *testing.T) {
	blocked := uuid.New()
	shadow := models.Person{ID: uuid.New(), DisplayName: "Grandpa Joe", Bio: "war stories"}

	got := RedactPeople([]models.Person{shadow}, NewBlockSet(blocked))
	if got[0].IsPlaceholder {
		t.Fatal("shadow profile must never be redacted")
	}
	if got[0].Bio != "war stories" {
		t.Fatal("shadow profile fields must be untouched")
	}
}

func TestRedactPeopleBlockedBecomesPlaceholder(t *testing.T) {
	blockedUser := uuid.New()
	father := uuid.New()
	person := models.Person{
		ID:           uuid.New(),
		DisplayName:  "Uncle Max",
		LinkedUserID: ptr(blockedUser),
		AvatarURL:    "https://cdn.example/max.jpg",
		Bio:          "bio",
		ContactEmail: "max@example.com",
		ContactPhone: "555-0100",
		FatherID:     ptr(father),
	}
	input := []models.Person{person}

	got := RedactPeople(input, NewBlockSet(blockedUser))

	if !got[0].IsPlaceholder {
		t.Fatal("expected placeholder")
	}
	if got[0].PlaceholderReason != models.PlaceholderReasonBlocked {
		t.Fatalf("reason = %q", got[0].PlaceholderReason)
	}
	if got[0].AvatarURL != "" || got[0].Bio != "" || got[0].ContactEmail != "" || got[0].ContactPhone != "" {
		t.Fatal("photo/bio/contact fields must be cleared")
	}
	if got[0].DisplayName != "Uncle Max" {
		t.Fatal("display name must be preserved")
	}
	if got[0].FatherID == nil || *got[0].FatherID != father {
		t.Fatal("relationship links must be preserved")
	}

	// original never mutated
	if input[0].IsPlaceholder || input[0].Bio != "bio" {
		t.Fatal("input person was mutated")
	}
}

func TestFilterUpdatesDropsBlockedAndPreservesOrder(t *testing.T) {
	blockedUser := uuid.New()
	okUser := uuid.New()
	wallOfBlocked := uuid.New()
	wallOfOK := uuid.New()

	people := map[uuid.UUID]models.Person{
		wallOfBlocked: {ID: wallOfBlocked, LinkedUserID: ptr(blockedUser)},
		wallOfOK:      {ID: wallOfOK, LinkedUserID: ptr(okUser)},
	}

	u1 := models.Update{ID: uuid.New(), PersonID: wallOfOK, CreatedBy: okUser}
	// blocked author
	u2 := models.Update{ID: uuid.New(), PersonID: wallOfOK, CreatedBy: blockedUser}
	// blocked wall owner
	u3 := models.Update{ID: uuid.New(), PersonID: wallOfBlocked, CreatedBy: okUser}
	// unknown owner, anonymous author
	u4 := models.Update{ID: uuid.New(), PersonID: uuid.New(), CreatedBy: uuid.Nil}
	updates := []models.Update{u1, u2, u3, u4}

	got := FilterUpdates(updates, NewBlockSet(blockedUser), people)

	if len(got) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(got))
	}
	if got[0].ID != u1.ID || got[1].ID != u4.ID {
		t.Fatal("order of surviving updates must match input")
	}

	// idempotence
	again := FilterUpdates(got, NewBlockSet(blockedUser), people)
	if len(again) != len(got) {
		t.Fatal("FilterUpdates is not idempotent")
	}
	for i := range got {
		if again[i].ID != got[i].ID {
			t.Fatal("FilterUpdates reordered on second pass")
		}
	}
}

func TestFilterUpdatesEmptyBlocklistReturnsInput(t *testing.T) {
	updates := []models.Update{
		{ID: uuid.New(), CreatedAt: time.Now(), DeletedAt: gorm.DeletedAt{}},
	}
	got := FilterUpdates(updates, nil, nil)
	if &got[0] != &updates[0] {
		t.Fatal("expected the input slice back for empty blocklist")
	}
}
