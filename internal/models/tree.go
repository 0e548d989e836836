package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tree is a family tree. People and updates are scoped to a tree the way the
// rest of the API is scoped to the X-Tree-ID header.
type Tree struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	CreatedBy uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tree) TableName() string {
	return "trees"
}
