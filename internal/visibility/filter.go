package visibility

import (
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/google/uuid"
)

// RedactPeople replaces blocked people with placeholders. Shadow profiles are
// never redacted. Placeholders keep the display name and the parent/spouse
// links so the tree stays navigable; photo, bio and contact fields are
// cleared.
//
// With an empty blocklist the input slice is returned as-is, so callers must
// not assume a fresh reference. Inputs are never mutated: redaction produces
// copies.
func RedactPeople(people []models.Person, blocked BlockSet) []models.Person {
	if len(blocked) == 0 {
		return people
	}

	out := make([]models.Person, len(people))
	for i, p := range people {
		if p.LinkedUserID != nil && blocked.Has(*p.LinkedUserID) {
			p.IsPlaceholder = true
			p.PlaceholderReason = models.PlaceholderReasonBlocked
			p.AvatarURL = ""
			p.Bio = ""
			p.ContactEmail = ""
			p.ContactPhone = ""
		}
		out[i] = p
	}
	return out
}

// FilterUpdates drops updates authored by a blocked account, and updates whose
// wall owner is linked to a blocked account. Unlike people, updates carry no
// tree topology, so they are removed rather than placeholdered. Input order is
// preserved; the operation is idempotent.
func FilterUpdates(updates []models.Update, blocked BlockSet, people map[uuid.UUID]models.Person) []models.Update {
	if len(blocked) == 0 {
		return updates
	}

	out := make([]models.Update, 0, len(updates))
	for _, u := range updates {
		if updateBlocked(u, blocked, people) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// updateBlocked is the single blocking rule shared by FilterUpdates and
// UpdatesForPerson. A missing wall owner or a zero CreatedBy matches nothing.
func updateBlocked(u models.Update, blocked BlockSet, people map[uuid.UUID]models.Person) bool {
	if u.CreatedBy != uuid.Nil && blocked.Has(u.CreatedBy) {
		return true
	}
	owner, ok := people[u.PersonID]
	if !ok || owner.LinkedUserID == nil {
		return false
	}
	return blocked.Has(*owner.LinkedUserID)
}
