package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is an admin-published platform notice
type Announcement struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Body      string             `json:"body" bson:"body"`
	Audience  string             `json:"audience" bson:"audience"` // all, farmer or supplier
	Priority  int                `json:"priority" bson:"priority"`
	IsActive  bool               `json:"isActive" bson:"is_active"`
	StartsAt  *time.Time         `json:"startsAt,omitempty" bson:"starts_at,omitempty"`
	EndsAt    *time.Time         `json:"endsAt,omitempty" bson:"ends_at,omitempty"`
	CreatedBy primitive.ObjectID `json:"createdBy" bson:"created_by"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// CreateAnnouncementRequest is the payload for admin announcement creation
type CreateAnnouncementRequest struct {
	Title    string     `json:"title" validate:"required,min=2,max=200"`
	Body     string     `json:"body" validate:"required,max=5000"`
	Audience string     `json:"audience,omitempty" validate:"omitempty,oneof=all farmer supplier"`
	Priority int        `json:"priority,omitempty" validate:"omitempty,gte=0,lte=100"`
	IsActive *bool      `json:"isActive,omitempty"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}

// UpdateAnnouncementRequest is the payload for admin announcement updates
type UpdateAnnouncementRequest struct {
	Title    *string    `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Body     *string    `json:"body,omitempty" validate:"omitempty,max=5000"`
	Audience *string    `json:"audience,omitempty" validate:"omitempty,oneof=all farmer supplier"`
	Priority *int       `json:"priority,omitempty" validate:"omitempty,gte=0,lte=100"`
	IsActive *bool      `json:"isActive,omitempty"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}
