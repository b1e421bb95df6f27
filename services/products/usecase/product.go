package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/constants"
	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/auth"
	"github.com/farmchain/backend/services/products"
)

var (
	// ErrProductNotFound marks a lookup that matched nothing visible
	// to the caller
	ErrProductNotFound = errors.New("product not found")

	// ErrNotOwner marks a write to a product owned by another supplier
	ErrNotOwner = errors.New("product belongs to another supplier")
)

// ProductUC implements the product usecase
type ProductUC struct {
	repo     products.ProductRepo
	eventsGW auth.EventsGW
}

// NewProductUC creates a new product usecase instance
func NewProductUC(repo products.ProductRepo, eventsGW auth.EventsGW) *ProductUC {
	return &ProductUC{repo: repo, eventsGW: eventsGW}
}

// ListPublic returns active products matching the filter
func (uc *ProductUC) ListPublic(ctx context.Context, filter models.ProductFilter) ([]models.Product, int64, error) {
	return uc.repo.List(ctx, filter, true)
}

// GetPublic returns one product if it is publicly visible
func (uc *ProductUC) GetPublic(ctx context.Context, id string) (*models.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Status != models.ProductActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create adds a listing for the supplier. New listings default to draft.
func (uc *ProductUC) Create(ctx context.Context, supplierID string, req *models.CreateProductRequest) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(supplierID)
	if err != nil {
		return nil, fmt.Errorf("invalid supplier id: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.ProductDraft
	}

	product := &models.Product{
		SupplierID:  oid,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Images:      req.Images,
		Specs:       req.Specs,
		Status:      status,
	}

	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product created",
		logger.String("product_id", product.ID.Hex()),
		logger.String("supplier_id", supplierID))
	return product, nil
}

// Update applies a partial update to the supplier's own product
func (uc *ProductUC) Update(ctx context.Context, supplierID, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	if err := uc.checkOwnership(ctx, supplierID, id); err != nil {
		return nil, err
	}

	// Suppliers cannot lift an admin block on their own listing
	if req.Status != nil && *req.Status == models.ProductBlocked {
		return nil, fmt.Errorf("blocked status is set by moderation only")
	}

	product, err := uc.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Delete removes the supplier's own product
func (uc *ProductUC) Delete(ctx context.Context, supplierID, id string) error {
	if err := uc.checkOwnership(ctx, supplierID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// ListMine returns the supplier's own products, any status
func (uc *ProductUC) ListMine(ctx context.Context, supplierID string, page, limit int) ([]models.Product, int64, error) {
	return uc.repo.ListBySupplier(ctx, supplierID, page, limit)
}

// Analytics bundles the supplier dashboard aggregations
func (uc *ProductUC) Analytics(ctx context.Context, supplierID string) (*models.SupplierAnalytics, error) {
	summary, err := uc.repo.SalesSummary(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopProducts(ctx, supplierID, 5)
	if err != nil {
		return nil, err
	}
	return &models.SupplierAnalytics{Summary: *summary, TopProducts: top}, nil
}

// UpdateStatus is the moderation path; it bypasses ownership checks
// and is mounted behind the admin guard
func (uc *ProductUC) UpdateStatus(ctx context.Context, id string, status models.ProductStatus) (*models.Product, error) {
	product, err := uc.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if err := uc.eventsGW.Publish(constants.TopicProductModerated, map[string]interface{}{
		"product_id": product.ID.Hex(),
		"status":     string(status),
	}); err != nil {
		logger.Warn("Failed to publish moderation event", logger.Err(err))
	}
	return product, nil
}

func (uc *ProductUC) checkOwnership(ctx context.Context, supplierID, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if product.SupplierID.Hex() != supplierID {
		return ErrNotOwner
	}
	return nil
}
