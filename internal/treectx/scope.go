package treectx

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForTree returns a GORM scope that filters by tree_id.
func ForTree(treeID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tree_id = ?", treeID)
	}
}
