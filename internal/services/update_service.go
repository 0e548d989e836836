package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/treectx"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/visibility"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrUpdateNotFound  = errors.New("update not found")
	ErrNotUpdateAuthor = errors.New("you are not the author of this update")
	ErrNotTagged       = errors.New("you are not tagged in this update")
	ErrContentRejected = errors.New("content rejected")
)

// ContentRejectedError carries the moderation reason alongside
// ErrContentRejected.
type ContentRejectedError struct {
	Reason  string
	Message string
}

func (e *ContentRejectedError) Error() string { return e.Message }
func (e *ContentRejectedError) Unwrap() error { return ErrContentRejected }

// UpdateService manages wall posts and assembles visible feeds through the
// visibility pipeline.
type UpdateService struct {
	db         *gorm.DB
	trees      *TreeService
	moderation *ModerationService
}

func NewUpdateService(db *gorm.DB, trees *TreeService, moderation *ModerationService) *UpdateService {
	return &UpdateService{db: db, trees: trees, moderation: moderation}
}

func (s *UpdateService) CreateUpdate(treeID, userID uuid.UUID, req *dto.CreateUpdateRequest) (*models.Update, error) {
	if req.Content == "" && req.PhotoURL == "" {
		return nil, errors.New("update needs a caption or a photo")
	}
	if len(req.Content) > 2000 {
		return nil, errors.New("caption must be under 2000 characters")
	}

	if ok, reason := s.moderation.FilterContent(req.Content); !ok {
		return nil, &ContentRejectedError{
			Reason:  reason,
			Message: s.moderation.GetRejectionMessage(reason),
		}
	}

	if _, err := s.trees.GetPerson(treeID, req.PersonID); err != nil {
		return nil, err
	}
	for _, tagged := range req.TaggedPersonIDs {
		if _, err := s.trees.GetPerson(treeID, tagged); err != nil {
			return nil, fmt.Errorf("tagged person %s: %w", tagged, ErrPersonNotFound)
		}
	}

	update := models.Update{
		ID:              uuid.New(),
		TreeID:          treeID,
		PersonID:        req.PersonID,
		CreatedBy:       userID,
		Content:         req.Content,
		PhotoURL:        req.PhotoURL,
		TaggedPersonIDs: datatypes.NewJSONSlice(req.TaggedPersonIDs),
	}

	if err := s.db.Create(&update).Error; err != nil {
		return nil, fmt.Errorf("failed to create update: %w", err)
	}
	return &update, nil
}

func (s *UpdateService) EditUpdate(treeID, updateID, userID uuid.UUID, req *dto.EditUpdateRequest) (*models.Update, error) {
	var update models.Update
	if err := s.db.Scopes(treectx.ForTree(treeID)).First(&update, "id = ?", updateID).Error; err != nil {
		return nil, ErrUpdateNotFound
	}
	if !visibility.IsOwnedBy(update, userID) {
		return nil, ErrNotUpdateAuthor
	}

	changes := map[string]interface{}{}
	if req.Content != nil {
		if ok, reason := s.moderation.FilterContent(*req.Content); !ok {
			return nil, &ContentRejectedError{
				Reason:  reason,
				Message: s.moderation.GetRejectionMessage(reason),
			}
		}
		changes["content"] = *req.Content
	}
	if req.PhotoURL != nil {
		changes["photo_url"] = *req.PhotoURL
	}
	if req.TaggedPersonIDs != nil {
		for _, tagged := range *req.TaggedPersonIDs {
			if _, err := s.trees.GetPerson(treeID, tagged); err != nil {
				return nil, fmt.Errorf("tagged person %s: %w", tagged, ErrPersonNotFound)
			}
		}
		changes["tagged_person_ids"] = datatypes.NewJSONSlice(*req.TaggedPersonIDs)
	}
	if len(changes) == 0 {
		return &update, nil
	}

	if err := s.db.Model(&update).Updates(changes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Scopes(treectx.ForTree(treeID)).First(&update, "id = ?", updateID).Error; err != nil {
		return nil, err
	}
	return &update, nil
}

// DeleteUpdate soft-deletes an authored update. Rows are never purged here.
func (s *UpdateService) DeleteUpdate(treeID, updateID, userID uuid.UUID) error {
	var update models.Update
	if err := s.db.Scopes(treectx.ForTree(treeID)).First(&update, "id = ?", updateID).Error; err != nil {
		return ErrUpdateNotFound
	}
	if !visibility.IsOwnedBy(update, userID) {
		return ErrNotUpdateAuthor
	}
	return s.db.Delete(&update).Error
}

// SetTagHidden hides or unhides a tagged update on the viewer's own wall.
func (s *UpdateService) SetTagHidden(treeID, updateID, userID uuid.UUID, hidden bool) error {
	ego, err := s.trees.EgoPerson(treeID, userID)
	if err != nil {
		return err
	}
	if ego == nil {
		return ErrPersonNotFound
	}

	var update models.Update
	if err := s.db.Scopes(treectx.ForTree(treeID)).First(&update, "id = ?", updateID).Error; err != nil {
		return ErrUpdateNotFound
	}
	if !visibility.IsTaggedIn(update, ego.ID) {
		return ErrNotTagged
	}

	ids := make([]uuid.UUID, 0, len(ego.HiddenTaggedUpdateIDs)+1)
	for _, id := range ego.HiddenTaggedUpdateIDs {
		if id != updateID {
			ids = append(ids, id)
		}
	}
	if hidden {
		ids = append(ids, updateID)
	}

	return s.db.Model(&models.Person{}).
		Where("id = ?", ego.ID).
		Update("hidden_tagged_update_ids", datatypes.NewJSONSlice(ids)).Error
}

// Wall assembles the visible update list for one person's wall, with the
// viewer's permissions attached to each update. viewerID is nil for
// unauthenticated viewers.
func (s *UpdateService) Wall(ctx context.Context, treeID, personID uuid.UUID, viewerID *uuid.UUID, includeTagged bool, blocked visibility.BlockSet) (*dto.WallResponse, error) {
	people, err := s.trees.PeopleMap(treeID)
	if err != nil {
		return nil, err
	}
	if _, ok := people[personID]; !ok {
		return nil, ErrPersonNotFound
	}

	all, err := s.treeUpdates(ctx, treeID)
	if err != nil {
		return nil, err
	}

	visible := visibility.UpdatesForPerson(all, personID, people, includeTagged, blocked)

	egoID := uuid.Nil
	if viewerID != nil {
		if ego, err := s.trees.EgoPerson(treeID, *viewerID); err == nil && ego != nil {
			egoID = ego.ID
		}
	}

	views := make([]dto.UpdateView, len(visible))
	for i, u := range visible {
		views[i] = dto.UpdateView{
			Update:      u,
			Permissions: visibility.ResolvePermissions(u, viewerID, personID, egoID),
		}
	}

	return &dto.WallResponse{PersonID: personID, Updates: views}, nil
}

// Feed returns every live update in the tree minus blocked content, newest
// first.
func (s *UpdateService) Feed(ctx context.Context, treeID uuid.UUID, blocked visibility.BlockSet) ([]models.Update, error) {
	people, err := s.trees.PeopleMap(treeID)
	if err != nil {
		return nil, err
	}

	all, err := s.treeUpdates(ctx, treeID)
	if err != nil {
		return nil, err
	}

	return visibility.FilterUpdates(all, blocked, people), nil
}

func (s *UpdateService) treeUpdates(ctx context.Context, treeID uuid.UUID) ([]models.Update, error) {
	var updates []models.Update
	err := s.db.WithContext(ctx).
		Scopes(treectx.ForTree(treeID)).
		Order("created_at DESC").
		Find(&updates).Error
	return updates, err
}
