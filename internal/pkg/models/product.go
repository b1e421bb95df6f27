package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductStatus is the moderation/listing state of a product
type ProductStatus string

const (
	ProductDraft    ProductStatus = "draft"
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
	ProductBlocked  ProductStatus = "blocked"
)

// Product represents a supplier listing
type Product struct {
	ID          primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	SupplierID  primitive.ObjectID     `json:"supplierId" bson:"supplier_id"`
	Title       string                 `json:"title" bson:"title"`
	Description string                 `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64                `json:"price" bson:"price"`
	Stock       int                    `json:"stock" bson:"stock"`
	Category    string                 `json:"category,omitempty" bson:"category,omitempty"`
	Images      []string               `json:"images,omitempty" bson:"images,omitempty"`
	Specs       map[string]interface{} `json:"specs,omitempty" bson:"specs,omitempty"`
	Status      ProductStatus          `json:"status" bson:"status"`
	CreatedAt   time.Time              `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time              `json:"updatedAt" bson:"updated_at"`
}

// CreateProductRequest is the payload for POST /products
type CreateProductRequest struct {
	Title       string                 `json:"title" validate:"required,min=2,max=120"`
	Description string                 `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       float64                `json:"price" validate:"required,gt=0"`
	Stock       int                    `json:"stock" validate:"gte=0"`
	Category    string                 `json:"category,omitempty" validate:"omitempty,max=60"`
	Images      []string               `json:"images,omitempty" validate:"omitempty,dive,url"`
	Specs       map[string]interface{} `json:"specs,omitempty"`
	Status      ProductStatus          `json:"status,omitempty" validate:"omitempty,oneof=draft active inactive"`
}

// UpdateProductRequest is the payload for PUT /products/:id.
// Nil pointers leave the stored field untouched.
type UpdateProductRequest struct {
	Title       *string                `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string                `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *float64               `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock       *int                   `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Category    *string                `json:"category,omitempty" validate:"omitempty,max=60"`
	Images      []string               `json:"images,omitempty" validate:"omitempty,dive,url"`
	Specs       map[string]interface{} `json:"specs,omitempty"`
	Status      *ProductStatus         `json:"status,omitempty" validate:"omitempty,oneof=draft active inactive blocked"`
}

// ProductFilter narrows public product listings
type ProductFilter struct {
	Category string
	Query    string
	Page     int
	Limit    int
}

// SalesSummary aggregates order lines for a supplier or the platform
type SalesSummary struct {
	Revenue float64 `json:"revenue" bson:"revenue"`
	Orders  int     `json:"orders" bson:"orders"`
	Units   int     `json:"units" bson:"units"`
}

// TopProduct is one row of the best-sellers aggregation
type TopProduct struct {
	ProductID primitive.ObjectID `json:"productId" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Units     int                `json:"units" bson:"units"`
	Sales     float64            `json:"sales" bson:"sales"`
}

// SupplierAnalytics bundles the supplier dashboard aggregations
type SupplierAnalytics struct {
	Summary     SalesSummary `json:"summary"`
	TopProducts []TopProduct `json:"topProducts"`
}
