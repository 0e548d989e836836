package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/treectx"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPersonNotFound  = errors.New("person not found")
	ErrAlreadyClaimed  = errors.New("profile is already linked to an account")
	ErrAlreadyInTree   = errors.New("you already have a profile in this tree")
	ErrNotProfileOwner = errors.New("you cannot edit this profile")
)

// TreeService manages trees and the people in them.
type TreeService struct {
	db *gorm.DB
}

func NewTreeService(db *gorm.DB) *TreeService {
	return &TreeService{db: db}
}

// CreateTree creates a tree and the creator's own claimed person node in it.
func (s *TreeService) CreateTree(userID uuid.UUID, req *dto.CreateTreeRequest) (*models.Tree, error) {
	if req.Name == "" {
		return nil, errors.New("tree name is required")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	tree := models.Tree{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedBy: userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tree).Error; err != nil {
			return err
		}
		ego := models.Person{
			ID:           uuid.New(),
			TreeID:       tree.ID,
			DisplayName:  user.DisplayName,
			LinkedUserID: &userID,
			CreatedBy:    userID,
		}
		if ego.DisplayName == "" {
			ego.DisplayName = user.Email
		}
		return tx.Create(&ego).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tree: %w", err)
	}
	return &tree, nil
}

// CreatePerson adds a shadow profile to the tree.
func (s *TreeService) CreatePerson(treeID, userID uuid.UUID, req *dto.CreatePersonRequest) (*models.Person, error) {
	if req.DisplayName == "" {
		return nil, errors.New("display name is required")
	}

	person := models.Person{
		ID:           uuid.New(),
		TreeID:       treeID,
		DisplayName:  req.DisplayName,
		Bio:          req.Bio,
		AvatarURL:    req.AvatarURL,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		FatherID:     req.FatherID,
		MotherID:     req.MotherID,
		SpouseID:     req.SpouseID,
		CreatedBy:    userID,
	}

	if err := s.db.Create(&person).Error; err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	return &person, nil
}

// ClaimPerson links a shadow profile to the calling account. An account holds
// at most one person per tree.
func (s *TreeService) ClaimPerson(treeID, personID, userID uuid.UUID) (*models.Person, error) {
	var person models.Person
	if err := s.db.Scopes(treectx.ForTree(treeID)).First(&person, "id = ?", personID).Error; err != nil {
		return nil, ErrPersonNotFound
	}
	if person.LinkedUserID != nil {
		return nil, ErrAlreadyClaimed
	}

	var existing models.Person
	if err := s.db.Scopes(treectx.ForTree(treeID)).Where("linked_user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, ErrAlreadyInTree
	}

	if err := s.db.Model(&person).Update("linked_user_id", userID).Error; err != nil {
		return nil, err
	}
	person.LinkedUserID = &userID
	return &person, nil
}

// UpdatePerson edits a profile. Only the linked account, or the creator while
// the profile is still a shadow, may edit.
func (s *TreeService) UpdatePerson(treeID, personID, userID uuid.UUID, req *dto.UpdatePersonRequest) (*models.Person, error) {
	var person models.Person
	if err := s.db.Scopes(treectx.ForTree(treeID)).First(&person, "id = ?", personID).Error; err != nil {
		return nil, ErrPersonNotFound
	}

	allowed := (person.LinkedUserID != nil && *person.LinkedUserID == userID) ||
		(person.IsShadow() && person.CreatedBy == userID)
	if !allowed {
		return nil, ErrNotProfileOwner
	}

	changes := map[string]interface{}{}
	if req.DisplayName != nil {
		if *req.DisplayName == "" {
			return nil, errors.New("display name cannot be empty")
		}
		changes["display_name"] = *req.DisplayName
	}
	if req.Bio != nil {
		changes["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		changes["avatar_url"] = *req.AvatarURL
	}
	if req.ContactEmail != nil {
		changes["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		changes["contact_phone"] = *req.ContactPhone
	}
	if req.FatherID != nil {
		changes["father_id"] = *req.FatherID
	}
	if req.MotherID != nil {
		changes["mother_id"] = *req.MotherID
	}
	if req.SpouseID != nil {
		changes["spouse_id"] = *req.SpouseID
	}
	if len(changes) == 0 {
		return &person, nil
	}

	if err := s.db.Model(&person).Updates(changes).Error; err != nil {
		return nil, err
	}

	if err := s.db.Scopes(treectx.ForTree(treeID)).First(&person, "id = ?", personID).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

// ListPeople returns every person in the tree.
func (s *TreeService) ListPeople(treeID uuid.UUID) ([]models.Person, error) {
	var people []models.Person
	err := s.db.Scopes(treectx.ForTree(treeID)).Order("created_at ASC").Find(&people).Error
	return people, err
}

// GetPerson fetches one person in the tree.
func (s *TreeService) GetPerson(treeID, personID uuid.UUID) (*models.Person, error) {
	var person models.Person
	if err := s.db.Scopes(treectx.ForTree(treeID)).First(&person, "id = ?", personID).Error; err != nil {
		return nil, ErrPersonNotFound
	}
	return &person, nil
}

// EgoPerson returns the viewer's own person node in the tree, or nil when the
// viewer has no claimed profile there.
func (s *TreeService) EgoPerson(treeID, userID uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := s.db.Scopes(treectx.ForTree(treeID)).Where("linked_user_id = ?", userID).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// PeopleMap loads the tree's people keyed by ID for the visibility pipeline.
func (s *TreeService) PeopleMap(treeID uuid.UUID) (map[uuid.UUID]models.Person, error) {
	people, err := s.ListPeople(treeID)
	if err != nil {
		return nil, err
	}
	m := make(map[uuid.UUID]models.Person, len(people))
	for _, p := range people {
		m[p.ID] = p
	}
	return m, nil
}
