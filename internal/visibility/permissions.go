package visibility

import (
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/google/uuid"
)

// Permissions are the actions a viewer may take on one update. The menu
// itself is always shown; when every other flag is false the client renders a
// report-only menu.
type Permissions struct {
	ShowMenuButton            bool `json:"show_menu_button"`
	CanEdit                   bool `json:"can_edit"`
	CanChangeVisibility       bool `json:"can_change_visibility"`
	CanDelete                 bool `json:"can_delete"`
	CanReject                 bool `json:"can_reject"`
	CanReport                 bool `json:"can_report"`
	CanToggleTaggedVisibility bool `json:"can_toggle_tagged_visibility"`
}

// ResolvePermissions computes the action set for an update. currentUserID is
// nil for unauthenticated viewers. viewingPersonID is the wall being looked
// at and egoID the viewer's own person node in this tree. First matching rule
// wins:
//
//  1. no authenticated viewer: report only;
//  2. viewer authored the update: edit, change visibility, delete, report;
//  3. viewer is tagged in someone else's update and is looking at their own
//     wall: report plus toggle of the tag's visibility;
//  4. anyone else's update: report only.
//
// CanReject is reserved for consensus moderation and is false on every path.
func ResolvePermissions(u models.Update, currentUserID *uuid.UUID, viewingPersonID, egoID uuid.UUID) Permissions {
	p := Permissions{ShowMenuButton: true, CanReport: true}

	if currentUserID == nil {
		return p
	}

	if IsOwnedBy(u, *currentUserID) {
		p.CanEdit = true
		p.CanChangeVisibility = true
		p.CanDelete = true
		return p
	}

	if IsTaggedIn(u, egoID) && u.PersonID != egoID && viewingPersonID == egoID {
		p.CanToggleTaggedVisibility = true
		return p
	}

	return p
}

// IsOwnedBy reports whether userID authored the update. A zero CreatedBy
// matches no one.
func IsOwnedBy(u models.Update, userID uuid.UUID) bool {
	return u.CreatedBy != uuid.Nil && u.CreatedBy == userID
}

// IsTaggedIn reports whether the person is tagged in the update.
func IsTaggedIn(u models.Update, personID uuid.UUID) bool {
	return personID != uuid.Nil && u.Tags(personID)
}
