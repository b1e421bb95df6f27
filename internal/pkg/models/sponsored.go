package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlacementStatus is the lifecycle state of a sponsored placement
type PlacementStatus string

const (
	PlacementDraft  PlacementStatus = "draft"
	PlacementActive PlacementStatus = "active"
	PlacementPaused PlacementStatus = "paused"
	PlacementEnded  PlacementStatus = "ended"
)

// SponsoredPlacement is a paid product slot bought by a supplier
type SponsoredPlacement struct {
	ID         primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	SupplierID primitive.ObjectID     `json:"supplierId" bson:"supplier_id"`
	ProductID  primitive.ObjectID     `json:"productId" bson:"product_id"`
	Title      string                 `json:"title" bson:"title"`
	ImageURL   string                 `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	TargetURL  string                 `json:"targetUrl,omitempty" bson:"target_url,omitempty"`
	Placement  string                 `json:"placement" bson:"placement"` // home_banner, search_top, category
	Budget     float64                `json:"budget" bson:"budget"`
	CPC        float64                `json:"cpc" bson:"cpc"`
	StartsAt   *time.Time             `json:"startsAt,omitempty" bson:"starts_at,omitempty"`
	EndsAt     *time.Time             `json:"endsAt,omitempty" bson:"ends_at,omitempty"`
	Status     PlacementStatus        `json:"status" bson:"status"`
	Metadata   map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time              `json:"updatedAt" bson:"updated_at"`
}

// CreatePlacementRequest is the payload for POST /sponsored
type CreatePlacementRequest struct {
	ProductID string                 `json:"productId" validate:"required,len=24,hexadecimal"`
	Title     string                 `json:"title" validate:"required,min=2,max=120"`
	ImageURL  string                 `json:"imageUrl,omitempty" validate:"omitempty,url"`
	TargetURL string                 `json:"targetUrl,omitempty" validate:"omitempty,url"`
	Placement string                 `json:"placement" validate:"required,oneof=home_banner search_top category"`
	Budget    float64                `json:"budget" validate:"required,gt=0"`
	CPC       float64                `json:"cpc" validate:"required,gt=0"`
	StartsAt  *time.Time             `json:"startsAt,omitempty"`
	EndsAt    *time.Time             `json:"endsAt,omitempty"`
	Status    PlacementStatus        `json:"status,omitempty" validate:"omitempty,oneof=draft active paused ended"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// UpdatePlacementRequest is the payload for PUT /sponsored/:id
type UpdatePlacementRequest struct {
	Title     *string                `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	ImageURL  *string                `json:"imageUrl,omitempty" validate:"omitempty,url"`
	TargetURL *string                `json:"targetUrl,omitempty" validate:"omitempty,url"`
	Placement *string                `json:"placement,omitempty" validate:"omitempty,oneof=home_banner search_top category"`
	Budget    *float64               `json:"budget,omitempty" validate:"omitempty,gt=0"`
	CPC       *float64               `json:"cpc,omitempty" validate:"omitempty,gt=0"`
	StartsAt  *time.Time             `json:"startsAt,omitempty"`
	EndsAt    *time.Time             `json:"endsAt,omitempty"`
	Status    *PlacementStatus       `json:"status,omitempty" validate:"omitempty,oneof=draft active paused ended"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}
