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

// AnnouncementRepo persists announcements in the admin partition
type AnnouncementRepo struct {
	db *database.MongoClient
}

// NewAnnouncementRepo creates a new announcement repository
func NewAnnouncementRepo(db *database.MongoClient) *AnnouncementRepo {
	return &AnnouncementRepo{db: db}
}

// ListActive returns currently visible notices for the audiences,
// highest priority first. Scheduling windows are enforced here: a
// notice with starts_at in the future or ends_at in the past is hidden
// even while is_active is set.
func (r *AnnouncementRepo) ListActive(ctx context.Context, audiences []string) ([]models.Announcement, error) {
	now := time.Now()
	query := bson.M{
		"is_active": true,
		"audience":  bson.M{"$in": audiences},
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

	cursor, err := r.db.Announcements().Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "priority", Value: -1}, {Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Announcement, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode announcements: %w", err)
	}
	return items, nil
}

// Create inserts an announcement and backfills the generated id
func (r *AnnouncementRepo) Create(ctx context.Context, a *models.Announcement) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.db.Announcements().InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of the request
func (r *AnnouncementRepo) Update(ctx context.Context, id string, req *models.UpdateAnnouncementRequest) (*models.Announcement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid announcement id: %w", err)
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Body != nil {
		set["body"] = *req.Body
	}
	if req.Audience != nil {
		set["audience"] = *req.Audience
	}
	if req.Priority != nil {
		set["priority"] = *req.Priority
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}
	if req.StartsAt != nil {
		set["starts_at"] = req.StartsAt
	}
	if req.EndsAt != nil {
		set["ends_at"] = req.EndsAt
	}

	var a models.Announcement
	err = r.db.Announcements().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}
	return &a, nil
}

// Delete removes an announcement
func (r *AnnouncementRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid announcement id: %w", err)
	}
	if _, err := r.db.Announcements().DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}
