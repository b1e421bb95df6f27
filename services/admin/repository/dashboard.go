package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farmchain/backend/internal/pkg/database"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
)

// DashboardRepo runs the admin counting and reporting queries
type DashboardRepo struct {
	db *database.MongoClient
}

// NewDashboardRepo creates a new dashboard repository
func NewDashboardRepo(db *database.MongoClient) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// CountUsers counts the identities in one role partition
func (r *DashboardRepo) CountUsers(ctx context.Context, role models.Role) (int64, error) {
	coll, err := r.db.Users(role)
	if err != nil {
		return 0, err
	}
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s users: %w", role, err)
	}
	return n, nil
}

// CountProducts counts the full catalog including drafts
func (r *DashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	n, err := r.db.Products().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// CountLands counts every registered parcel
func (r *DashboardRepo) CountLands(ctx context.Context) (int64, error) {
	n, err := r.db.Lands().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count lands: %w", err)
	}
	return n, nil
}

// CountPendingLands counts the parcels waiting on review
func (r *DashboardRepo) CountPendingLands(ctx context.Context) (int64, error) {
	n, err := r.db.Lands().CountDocuments(ctx, bson.M{"is_verified": false, "is_active": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending lands: %w", err)
	}
	return n, nil
}

// PlatformSummary aggregates revenue, order and unit totals across the
// whole order book
func (r *DashboardRepo) PlatformSummary(ctx context.Context) (*models.SalesSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$total"},
			"orders":  bson.M{"$sum": 1},
			"units":   bson.M{"$sum": bson.M{"$sum": "$items.qty"}},
		}}},
	}

	cursor, err := r.db.Orders().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate platform summary: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.SalesSummary
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode platform summary: %w", err)
	}
	if len(rows) == 0 {
		return &models.SalesSummary{}, nil
	}
	return &rows[0], nil
}

// TopSuppliers ranks suppliers by order revenue
func (r *DashboardRepo) TopSuppliers(ctx context.Context, limit int) ([]models.TopSupplier, error) {
	if limit <= 0 {
		limit = 10
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":    "$supplier_id",
			"orders": bson.M{"$sum": 1},
			"total":  bson.M{"$sum": "$total"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.db.Orders().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top suppliers: %w", err)
	}
	defer cursor.Close(ctx)

	rows := make([]models.TopSupplier, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode top suppliers: %w", err)
	}
	return rows, nil
}

// ListUsers pages through one role partition, newest first
func (r *DashboardRepo) ListUsers(ctx context.Context, role models.Role, page, limit int) ([]models.User, int64, error) {
	coll, err := r.db.Users(role)
	if err != nil {
		return nil, 0, err
	}

	_, limit, skip := utils.Pagination(page, limit, 20, 100)

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count %s users: %w", role, err)
	}

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s users: %w", role, err)
	}
	defer cursor.Close(ctx)

	items := make([]models.User, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode users: %w", err)
	}
	for i := range items {
		items[i].Role = role
	}
	return items, total, nil
}
