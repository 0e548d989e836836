package visibility

import (
	"sort"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/google/uuid"
)

// UpdatesForPerson computes the visible wall for one person, newest first.
//
// Soft-deleted and blocked updates are always excluded. The wall is the union
// of two subsets:
//
//   - own: updates posted on the person's wall, except posts that tag only
//     other people (the person's content about others, not a personal post);
//   - tagged (when includeTagged is set): updates tagging the person that the
//     person has not hidden from their wall.
//
// Duplicates are collapsed by update ID with the own subset taking priority.
// Ordering is by CreatedAt descending with ties keeping input order (stable
// sort). Inputs are never mutated.
func UpdatesForPerson(all []models.Update, personID uuid.UUID, people map[uuid.UUID]models.Person, includeTagged bool, blocked BlockSet) []models.Update {
	person, hasPerson := people[personID]

	var own, tagged []models.Update
	for _, u := range all {
		if u.Deleted() || updateBlocked(u, blocked, people) {
			continue
		}
		if u.PersonID == personID && (!u.HasTags() || u.Tags(personID)) {
			own = append(own, u)
			continue
		}
		if includeTagged && u.Tags(personID) {
			if hasPerson && person.HasHiddenTag(u.ID) {
				continue
			}
			tagged = append(tagged, u)
		}
	}

	out := make([]models.Update, 0, len(own)+len(tagged))
	seen := make(map[uuid.UUID]struct{}, len(own)+len(tagged))
	for _, u := range append(own, tagged...) {
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		out = append(out, u)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
