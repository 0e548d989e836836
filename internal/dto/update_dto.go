package dto

import (
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/visibility"
	"github.com/google/uuid"
)

type CreateUpdateRequest struct {
	PersonID        uuid.UUID   `json:"person_id"`
	Content         string      `json:"content"`
	PhotoURL        string      `json:"photo_url"`
	TaggedPersonIDs []uuid.UUID `json:"tagged_person_ids"`
}

type EditUpdateRequest struct {
	Content         *string      `json:"content"`
	PhotoURL        *string      `json:"photo_url"`
	TaggedPersonIDs *[]uuid.UUID `json:"tagged_person_ids"`
}

type HideTaggedUpdateRequest struct {
	Hidden bool `json:"hidden"`
}

// UpdateView pairs an update with the actions the viewer may take on it.
type UpdateView struct {
	Update      models.Update          `json:"update"`
	Permissions visibility.Permissions `json:"permissions"`
}

type WallResponse struct {
	PersonID uuid.UUID    `json:"person_id"`
	Updates  []UpdateView `json:"updates"`
}
