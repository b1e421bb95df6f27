package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scheme is a government support program listed for farmers. Schemes
// are curated by admins and browsable without signing in.
type Scheme struct {
	ID                primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	Title             string                 `json:"title" bson:"title"`
	Description       string                 `json:"description,omitempty" bson:"description,omitempty"`
	Department        string                 `json:"department,omitempty" bson:"department,omitempty"`
	Category          string                 `json:"category,omitempty" bson:"category,omitempty"`
	Benefits          []string               `json:"benefits" bson:"benefits"`
	Eligibility       []string               `json:"eligibility" bson:"eligibility"`
	DocumentsRequired []string               `json:"documentsRequired" bson:"documents_required"`
	URL               string                 `json:"url,omitempty" bson:"url,omitempty"`
	ActiveFrom        *time.Time             `json:"activeFrom,omitempty" bson:"active_from,omitempty"`
	ActiveTo          *time.Time             `json:"activeTo,omitempty" bson:"active_to,omitempty"`
	IsActive          bool                   `json:"isActive" bson:"is_active"`
	States            []string               `json:"states" bson:"states"`
	Districts         []string               `json:"districts" bson:"districts"`
	Tags              []string               `json:"tags" bson:"tags"`
	Metadata          map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt         time.Time              `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time              `json:"updatedAt" bson:"updated_at"`
}

// SchemeFilter narrows the public scheme listing. State and district
// match against the scheme's coverage arrays; Search runs a text query
// over title and description.
type SchemeFilter struct {
	State    string
	District string
	Search   string
	Tags     []string
}

// CreateSchemeRequest is the payload for admin scheme creation
type CreateSchemeRequest struct {
	Title             string                 `json:"title" validate:"required,min=2,max=200"`
	Description       string                 `json:"description,omitempty" validate:"omitempty,max=5000"`
	Department        string                 `json:"department,omitempty" validate:"omitempty,max=200"`
	Category          string                 `json:"category,omitempty" validate:"omitempty,max=100"`
	Benefits          []string               `json:"benefits,omitempty"`
	Eligibility       []string               `json:"eligibility,omitempty"`
	DocumentsRequired []string               `json:"documentsRequired,omitempty"`
	URL               string                 `json:"url,omitempty" validate:"omitempty,url"`
	ActiveFrom        *time.Time             `json:"activeFrom,omitempty"`
	ActiveTo          *time.Time             `json:"activeTo,omitempty"`
	IsActive          *bool                  `json:"isActive,omitempty"`
	States            []string               `json:"states,omitempty"`
	Districts         []string               `json:"districts,omitempty"`
	Tags              []string               `json:"tags,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateSchemeRequest is the payload for admin scheme updates
type UpdateSchemeRequest struct {
	Title             *string                `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description       *string                `json:"description,omitempty" validate:"omitempty,max=5000"`
	Department        *string                `json:"department,omitempty" validate:"omitempty,max=200"`
	Category          *string                `json:"category,omitempty" validate:"omitempty,max=100"`
	Benefits          []string               `json:"benefits,omitempty"`
	Eligibility       []string               `json:"eligibility,omitempty"`
	DocumentsRequired []string               `json:"documentsRequired,omitempty"`
	URL               *string                `json:"url,omitempty" validate:"omitempty,url"`
	ActiveFrom        *time.Time             `json:"activeFrom,omitempty"`
	ActiveTo          *time.Time             `json:"activeTo,omitempty"`
	IsActive          *bool                  `json:"isActive,omitempty"`
	States            []string               `json:"states,omitempty"`
	Districts         []string               `json:"districts,omitempty"`
	Tags              []string               `json:"tags,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}
