package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farmchain/backend/internal/pkg/database"
	"github.com/farmchain/backend/internal/pkg/models"
)

// PlacementRepo persists sponsored placements
type PlacementRepo struct {
	db *database.MongoClient
}

// NewPlacementRepo creates a new placement repository
func NewPlacementRepo(db *database.MongoClient) *PlacementRepo {
	return &PlacementRepo{db: db}
}

// ListActive returns the live placements for a slot. A placement with a
// schedule outside the current time is excluded even while its status
// is active.
func (r *PlacementRepo) ListActive(ctx context.Context, placement string) ([]models.SponsoredPlacement, error) {
	now := time.Now()
	query := bson.M{
		"status": models.PlacementActive,
		"$and": []bson.M{
			{"$or": []bson.M{
				{"starts_at": bson.M{"$exists": false}},
				{"starts_at": nil},
				{"starts_at": bson.M{"$lte": now}},
			}},
			{"$or": []bson.M{
				{"ends_at": bson.M{"$exists": false}},
				{"ends_at": nil},
				{"ends_at": bson.M{"$gte": now}},
			}},
		},
	}
	if placement != "" {
		query["placement"] = placement
	}

	cursor, err := r.db.Placements().Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "cpc", Value: -1}, {Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list active placements: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.SponsoredPlacement, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode placements: %w", err)
	}
	return items, nil
}

// ListBySupplier returns a supplier's placements, newest first
func (r *PlacementRepo) ListBySupplier(ctx context.Context, supplierID string) ([]models.SponsoredPlacement, error) {
	oid, err := primitive.ObjectIDFromHex(supplierID)
	if err != nil {
		return nil, fmt.Errorf("invalid supplier id: %w", err)
	}

	cursor, err := r.db.Placements().Find(ctx,
		bson.M{"supplier_id": oid},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list supplier placements: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.SponsoredPlacement, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode placements: %w", err)
	}
	return items, nil
}

// GetByID returns a placement, or (nil, nil) when it does not exist
func (r *PlacementRepo) GetByID(ctx context.Context, id string) (*models.SponsoredPlacement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid placement id: %w", err)
	}

	var p models.SponsoredPlacement
	err = r.db.Placements().FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get placement: %w", err)
	}
	return &p, nil
}

// Create inserts a placement and backfills id and timestamps
func (r *PlacementRepo) Create(ctx context.Context, p *models.SponsoredPlacement) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.db.Placements().InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create placement: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of the request
func (r *PlacementRepo) Update(ctx context.Context, id string, req *models.UpdatePlacementRequest) (*models.SponsoredPlacement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid placement id: %w", err)
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.ImageURL != nil {
		set["image_url"] = *req.ImageURL
	}
	if req.TargetURL != nil {
		set["target_url"] = *req.TargetURL
	}
	if req.Placement != nil {
		set["placement"] = *req.Placement
	}
	if req.Budget != nil {
		set["budget"] = *req.Budget
	}
	if req.CPC != nil {
		set["cpc"] = *req.CPC
	}
	if req.StartsAt != nil {
		set["starts_at"] = req.StartsAt
	}
	if req.EndsAt != nil {
		set["ends_at"] = req.EndsAt
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.Metadata != nil {
		set["metadata"] = req.Metadata
	}

	var p models.SponsoredPlacement
	err = r.db.Placements().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update placement: %w", err)
	}
	return &p, nil
}

// Delete removes a placement
func (r *PlacementRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid placement id: %w", err)
	}
	if _, err := r.db.Placements().DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete placement: %w", err)
	}
	return nil
}
