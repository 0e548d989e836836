package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Update is a post on a person's wall. CreatedBy is the authoring account and
// may differ from the wall owner when posting on a relative's wall or via
// tagging. Deletion is always soft: a row with DeletedAt set is never shown
// to any viewer.
type Update struct {
	ID              uuid.UUID                      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TreeID          uuid.UUID                      `gorm:"type:uuid;not null;index" json:"tree_id"`
	PersonID        uuid.UUID                      `gorm:"type:uuid;not null;index" json:"person_id"`
	CreatedBy       uuid.UUID                      `gorm:"type:uuid;index" json:"created_by"`
	Content         string                         `gorm:"type:text" json:"content"`
	PhotoURL        string                         `gorm:"size:1024" json:"photo_url,omitempty"`
	TaggedPersonIDs datatypes.JSONSlice[uuid.UUID] `json:"tagged_person_ids"`
	CreatedAt       time.Time                      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time                      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt                 `gorm:"index" json:"-"`
}

func (Update) TableName() string {
	return "updates"
}

// HasTags reports whether the update tags anyone.
func (u Update) HasTags() bool {
	return len(u.TaggedPersonIDs) > 0
}

// Tags reports whether the update tags the given person.
func (u Update) Tags(personID uuid.UUID) bool {
	for _, id := range u.TaggedPersonIDs {
		if id == personID {
			return true
		}
	}
	return false
}

// Deleted reports whether the update has been soft-deleted.
func (u Update) Deleted() bool {
	return u.DeletedAt.Valid
}
