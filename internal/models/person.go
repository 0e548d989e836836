package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlaceholderReasonBlocked marks a person redacted because the viewer blocked
// the linked account.
const PlaceholderReasonBlocked = "blocked"

// Person is a node in a family tree. LinkedUserID is nil for shadow profiles
// (created by a relative, never claimed). HiddenTaggedUpdateIDs holds updates
// the person chose to suppress from their own wall.
//
// IsPlaceholder and PlaceholderReason are never persisted: the block filter
// sets them on derived copies handed to the API layer. The zero value always
// means a full, unredacted profile.
type Person struct {
	ID                    uuid.UUID                      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TreeID                uuid.UUID                      `gorm:"type:uuid;not null;index" json:"tree_id"`
	DisplayName           string                         `gorm:"size:255;not null" json:"display_name"`
	LinkedUserID          *uuid.UUID                     `gorm:"type:uuid;index" json:"linked_user_id,omitempty"`
	AvatarURL             string                         `gorm:"size:1024" json:"avatar_url,omitempty"`
	Bio                   string                         `gorm:"type:text" json:"bio,omitempty"`
	ContactEmail          string                         `gorm:"size:255" json:"contact_email,omitempty"`
	ContactPhone          string                         `gorm:"size:50" json:"contact_phone,omitempty"`
	FatherID              *uuid.UUID                     `gorm:"type:uuid" json:"father_id,omitempty"`
	MotherID              *uuid.UUID                     `gorm:"type:uuid" json:"mother_id,omitempty"`
	SpouseID              *uuid.UUID                     `gorm:"type:uuid" json:"spouse_id,omitempty"`
	HiddenTaggedUpdateIDs datatypes.JSONSlice[uuid.UUID] `json:"-"`
	CreatedBy             uuid.UUID                      `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt             time.Time                      `json:"created_at"`
	UpdatedAt             time.Time                      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt                 `gorm:"index" json:"-"`

	IsPlaceholder     bool   `gorm:"-" json:"is_placeholder,omitempty"`
	PlaceholderReason string `gorm:"-" json:"placeholder_reason,omitempty"`
}

func (Person) TableName() string {
	return "people"
}

// IsShadow reports whether the profile has never been claimed by an account.
func (p Person) IsShadow() bool {
	return p.LinkedUserID == nil
}

// HasHiddenTag reports whether the person suppressed the given update from
// their wall.
func (p Person) HasHiddenTag(updateID uuid.UUID) bool {
	for _, id := range p.HiddenTaggedUpdateIDs {
		if id == updateID {
			return true
		}
	}
	return false
}
