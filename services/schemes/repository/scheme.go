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

// SchemeRepo persists government schemes in the admin partition
type SchemeRepo struct {
	db *database.MongoClient
}

// NewSchemeRepo creates a new scheme repository
func NewSchemeRepo(db *database.MongoClient) *SchemeRepo {
	return &SchemeRepo{db: db}
}

// ListActive returns active schemes matching the filter, newest first.
// State and district match against the coverage arrays; a scheme that
// lists no states is nationwide and only matched when no state filter
// is given, mirroring the legacy behavior.
func (r *SchemeRepo) ListActive(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error) {
	query := bson.M{"is_active": true}
	if filter.State != "" {
		query["states"] = filter.State
	}
	if filter.District != "" {
		query["districts"] = filter.District
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}

	cursor, err := r.db.Schemes().Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list schemes: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Scheme, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode schemes: %w", err)
	}
	return items, nil
}

// Create inserts a scheme and backfills the generated id
func (r *SchemeRepo) Create(ctx context.Context, s *models.Scheme) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.db.Schemes().InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create scheme: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of the request
func (r *SchemeRepo) Update(ctx context.Context, id string, req *models.UpdateSchemeRequest) (*models.Scheme, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid scheme id: %w", err)
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Department != nil {
		set["department"] = *req.Department
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Benefits != nil {
		set["benefits"] = req.Benefits
	}
	if req.Eligibility != nil {
		set["eligibility"] = req.Eligibility
	}
	if req.DocumentsRequired != nil {
		set["documents_required"] = req.DocumentsRequired
	}
	if req.URL != nil {
		set["url"] = *req.URL
	}
	if req.ActiveFrom != nil {
		set["active_from"] = req.ActiveFrom
	}
	if req.ActiveTo != nil {
		set["active_to"] = req.ActiveTo
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}
	if req.States != nil {
		set["states"] = req.States
	}
	if req.Districts != nil {
		set["districts"] = req.Districts
	}
	if req.Tags != nil {
		set["tags"] = req.Tags
	}
	if req.Metadata != nil {
		set["metadata"] = req.Metadata
	}

	var s models.Scheme
	err = r.db.Schemes().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update scheme: %w", err)
	}
	return &s, nil
}

// Delete removes a scheme, reporting whether one matched
func (r *SchemeRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("invalid scheme id: %w", err)
	}

	res, err := r.db.Schemes().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete scheme: %w", err)
	}
	return res.DeletedCount > 0, nil
}
