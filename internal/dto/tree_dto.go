package dto

import "github.com/google/uuid"

type CreateTreeRequest struct {
	Name string `json:"name"`
}

type CreatePersonRequest struct {
	DisplayName  string     `json:"display_name"`
	Bio          string     `json:"bio"`
	AvatarURL    string     `json:"avatar_url"`
	ContactEmail string     `json:"contact_email"`
	ContactPhone string     `json:"contact_phone"`
	FatherID     *uuid.UUID `json:"father_id"`
	MotherID     *uuid.UUID `json:"mother_id"`
	SpouseID     *uuid.UUID `json:"spouse_id"`
}

type UpdatePersonRequest struct {
	DisplayName  *string    `json:"display_name"`
	Bio          *string    `json:"bio"`
	AvatarURL    *string    `json:"avatar_url"`
	ContactEmail *string    `json:"contact_email"`
	ContactPhone *string    `json:"contact_phone"`
	FatherID     *uuid.UUID `json:"father_id"`
	MotherID     *uuid.UUID `json:"mother_id"`
	SpouseID     *uuid.UUID `json:"spouse_id"`
}
