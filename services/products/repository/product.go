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

// ProductRepo persists products and reads order aggregations. Both
// collections live in the supplier partition.
type ProductRepo struct {
	db *database.MongoClient
}

// NewProductRepo creates a new product repository
func NewProductRepo(db *database.MongoClient) *ProductRepo {
	return &ProductRepo{db: db}
}

// List returns a filtered page of products with the total match count
func (r *ProductRepo) List(ctx context.Context, filter models.ProductFilter, activeOnly bool) ([]models.Product, int64, error) {
	query := bson.M{}
	if activeOnly {
		query["status"] = models.ProductActive
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Query != "" {
		query["title"] = bson.M{"$regex": filter.Query, "$options": "i"}
	}

	coll := r.db.Products()

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	_, limit, skip := utils.Pagination(filter.Page, filter.Limit, 20, 100)
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, total, nil
}

// GetByID returns one product or (nil, nil) when absent
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	var product models.Product
	err = r.db.Products().FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// Create inserts a product and backfills the generated id
func (r *ProductRepo) Create(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := r.db.Products().InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of the request
func (r *ProductRepo) Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Stock != nil {
		set["stock"] = *req.Stock
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Images != nil {
		set["images"] = req.Images
	}
	if req.Specs != nil {
		set["specs"] = req.Specs
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	var product models.Product
	err = r.db.Products().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// Delete removes a product
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}
	if _, err := r.db.Products().DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// ListBySupplier returns the supplier's own products, any status
func (r *ProductRepo) ListBySupplier(ctx context.Context, supplierID string, page, limit int) ([]models.Product, int64, error) {
	oid, err := primitive.ObjectIDFromHex(supplierID)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid supplier id: %w", err)
	}

	query := bson.M{"supplier_id": oid}
	coll := r.db.Products()

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	_, lim, skip := utils.Pagination(page, limit, 20, 100)
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(lim)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list supplier products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, total, nil
}

// SetStatus moves a product to a new moderation state
func (r *ProductRepo) SetStatus(ctx context.Context, id string, status models.ProductStatus) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	var product models.Product
	err = r.db.Products().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set product status: %w", err)
	}
	return &product, nil
}

// SalesSummary aggregates the supplier's order lines
func (r *ProductRepo) SalesSummary(ctx context.Context, supplierID string) (*models.SalesSummary, error) {
	oid, err := primitive.ObjectIDFromHex(supplierID)
	if err != nil {
		return nil, fmt.Errorf("invalid supplier id: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"supplier_id": oid}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$total"},
			"orders":  bson.M{"$sum": 1},
			"units":   bson.M{"$sum": bson.M{"$sum": "$items.qty"}},
		}}},
	}

	cursor, err := r.db.Orders().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.SalesSummary
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode sales summary: %w", err)
	}
	if len(rows) == 0 {
		return &models.SalesSummary{}, nil
	}
	return &rows[0], nil
}

// TopProducts aggregates the supplier's best selling lines
func (r *ProductRepo) TopProducts(ctx context.Context, supplierID string, limit int) ([]models.TopProduct, error) {
	oid, err := primitive.ObjectIDFromHex(supplierID)
	if err != nil {
		return nil, fmt.Errorf("invalid supplier id: %w", err)
	}
	if limit <= 0 {
		limit = 5
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"supplier_id": oid}}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$items.product_id",
			"title": bson.M{"$first": "$items.title"},
			"units": bson.M{"$sum": "$items.qty"},
			"sales": bson.M{"$sum": bson.M{"$multiply": []string{"$items.qty", "$items.price"}}},
		}}},
		{{Key: "$sort", Value: bson.M{"units": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.db.Orders().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top products: %w", err)
	}
	defer cursor.Close(ctx)

	rows := make([]models.TopProduct, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode top products: %w", err)
	}
	return rows, nil
}
