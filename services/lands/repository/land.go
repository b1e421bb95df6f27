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
	"github.com/farmchain/backend/internal/utils"
)

// LandRepo persists land parcels in the farmer partition
type LandRepo struct {
	db *database.MongoClient
}

// NewLandRepo creates a new land repository
func NewLandRepo(db *database.MongoClient) *LandRepo {
	return &LandRepo{db: db}
}

// Create inserts a parcel and backfills the generated id
func (r *LandRepo) Create(ctx context.Context, land *models.Land) error {
	if land.ID.IsZero() {
		land.ID = primitive.NewObjectID()
	}
	now := time.Now()
	land.CreatedAt = now
	land.UpdatedAt = now

	if _, err := r.db.Lands().InsertOne(ctx, land); err != nil {
		return fmt.Errorf("failed to create land: %w", err)
	}
	return nil
}

// GetByID returns one parcel or (nil, nil) when absent
func (r *LandRepo) GetByID(ctx context.Context, id string) (*models.Land, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid land id: %w", err)
	}

	var land models.Land
	err = r.db.Lands().FindOne(ctx, bson.M{"_id": oid}).Decode(&land)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get land: %w", err)
	}
	return &land, nil
}

// ListByFarmer returns the farmer's own parcels
func (r *LandRepo) ListByFarmer(ctx context.Context, farmerID string) ([]models.Land, error) {
	oid, err := primitive.ObjectIDFromHex(farmerID)
	if err != nil {
		return nil, fmt.Errorf("invalid farmer id: %w", err)
	}

	cursor, err := r.db.Lands().Find(ctx, bson.M{"farmer_id": oid},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list lands: %w", err)
	}
	defer cursor.Close(ctx)

	lands := make([]models.Land, 0)
	if err := cursor.All(ctx, &lands); err != nil {
		return nil, fmt.Errorf("failed to decode lands: %w", err)
	}
	return lands, nil
}

// ListByGeohashPrefixes returns verified active parcels whose geohash
// starts with any of the prefixes. Each anchored prefix becomes a range
// scan over the geohash index; prefix length controls the search radius.
func (r *LandRepo) ListByGeohashPrefixes(ctx context.Context, prefixes []string, limit int) ([]models.Land, error) {
	if limit <= 0 {
		limit = 50
	}

	branches := make([]bson.M, 0, len(prefixes))
	for _, prefix := range prefixes {
		branches = append(branches, bson.M{"geohash": bson.M{"$regex": "^" + prefix}})
	}

	query := bson.M{
		"$or":         branches,
		"is_verified": true,
		"is_active":   true,
	}

	cursor, err := r.db.Lands().Find(ctx, query, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby lands: %w", err)
	}
	defer cursor.Close(ctx)

	lands := make([]models.Land, 0)
	if err := cursor.All(ctx, &lands); err != nil {
		return nil, fmt.Errorf("failed to decode lands: %w", err)
	}
	return lands, nil
}

// ListPending returns unverified parcels awaiting admin review
func (r *LandRepo) ListPending(ctx context.Context, page, limit int) ([]models.Land, int64, error) {
	query := bson.M{"is_verified": false, "is_active": true}
	coll := r.db.Lands()

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pending lands: %w", err)
	}

	_, lim, skip := utils.Pagination(page, limit, 20, 100)
	cursor, err := coll.Find(ctx, query, options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(lim)).
		SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pending lands: %w", err)
	}
	defer cursor.Close(ctx)

	lands := make([]models.Land, 0)
	if err := cursor.All(ctx, &lands); err != nil {
		return nil, 0, fmt.Errorf("failed to decode lands: %w", err)
	}
	return lands, total, nil
}

// ApplyReview records one review action. Approval marks the parcel
// verified; rejection deactivates it. Either way the note is appended
// to the audit trail.
func (r *LandRepo) ApplyReview(ctx context.Context, id string, verified bool, note models.VerificationNote) (*models.Land, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid land id: %w", err)
	}

	update := bson.M{
		"$set": bson.M{
			"is_verified": verified,
			"is_active":   verified,
			"updated_at":  time.Now(),
		},
		"$push": bson.M{"verification_notes": note},
	}

	var land models.Land
	err = r.db.Lands().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&land)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply review: %w", err)
	}
	return &land, nil
}
