package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/coppa"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userFlagSource reads account moderation flags from the users table for the
// COPPA gate.
type userFlagSource struct {
	db *gorm.DB
}

func NewUserFlagSource(db *gorm.DB) coppa.FlagSource {
	return &userFlagSource{db: db}
}

func (s *userFlagSource) AccountFlags(ctx context.Context, userID uuid.UUID) (coppa.Flags, error) {
	var user models.User
	err := s.db.WithContext(ctx).Select("id", "coppa_blocked").First(&user, "id = ?", userID).Error
	if err != nil {
		return coppa.Flags{}, err
	}
	return coppa.Flags{Blocked: user.COPPABlocked}, nil
}
