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

// MessageRepo persists direct messages
type MessageRepo struct {
	db *database.MongoClient
}

// NewMessageRepo creates a new message repository
func NewMessageRepo(db *database.MongoClient) *MessageRepo {
	return &MessageRepo{db: db}
}

// Create inserts a message and backfills id and timestamp
func (r *MessageRepo) Create(ctx context.Context, m *models.Message) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	m.CreatedAt = time.Now()

	if _, err := r.db.Messages().InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// GetByID returns a message, or (nil, nil) when it does not exist
func (r *MessageRepo) GetByID(ctx context.Context, id string) (*models.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid message id: %w", err)
	}

	var m models.Message
	err = r.db.Messages().FindOne(ctx, bson.M{"_id": oid}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return &m, nil
}

// ListThreads groups the user's messages by thread, newest thread
// first, carrying the latest message of each thread
func (r *MessageRepo) ListThreads(ctx context.Context, userID string) ([]models.Thread, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": []bson.M{
			{"sender_id": oid},
			{"recipient_id": oid},
		}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$thread_id",
			"last_message": bson.M{"$first": "$$ROOT"},
			"count":        bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "last_message.created_at", Value: -1}}}},
	}

	cursor, err := r.db.Messages().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer cursor.Close(ctx)

	threads := make([]models.Thread, 0)
	if err := cursor.All(ctx, &threads); err != nil {
		return nil, fmt.Errorf("failed to decode threads: %w", err)
	}
	return threads, nil
}

// ListByThread returns a thread's messages oldest first
func (r *MessageRepo) ListByThread(ctx context.Context, threadID string) ([]models.Message, error) {
	cursor, err := r.db.Messages().Find(ctx,
		bson.M{"thread_id": threadID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list thread messages: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Message, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode thread messages: %w", err)
	}
	return items, nil
}

// MarkRead stamps read_at once; a second call leaves the original stamp
func (r *MessageRepo) MarkRead(ctx context.Context, id string) (*models.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid message id: %w", err)
	}

	var m models.Message
	err = r.db.Messages().FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "read_at": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"read_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// already read or missing, hand back whatever exists
		return r.GetByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark message read: %w", err)
	}
	return &m, nil
}
