package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdminOverview is the dashboard counters document
type AdminOverview struct {
	FarmerCount   int64 `json:"farmerCount"`
	SupplierCount int64 `json:"supplierCount"`
	ProductCount  int64 `json:"productCount"`
	LandCount     int64 `json:"landCount"`
	PendingLands  int64 `json:"pendingLands"`
}

// TopSupplier is one row of the admin sales report aggregation
type TopSupplier struct {
	SupplierID primitive.ObjectID `json:"supplierId" bson:"_id"`
	Orders     int                `json:"orders" bson:"orders"`
	Total      float64            `json:"total" bson:"total"`
}

// AdminReports bundles the platform-wide sales aggregations
type AdminReports struct {
	Summary      SalesSummary  `json:"summary"`
	TopSuppliers []TopSupplier `json:"topSuppliers"`
}

// UpdateProductStatusRequest is the admin moderation payload
type UpdateProductStatusRequest struct {
	Status ProductStatus `json:"status" validate:"required,oneof=draft active inactive blocked"`
}
