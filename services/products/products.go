package products

import (
	"context"

	"github.com/farmchain/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/farmchain/backend/services/products ProductRepo

// ProductUC is the product listing usecase interface
type ProductUC interface {
	ListPublic(ctx context.Context, filter models.ProductFilter) ([]models.Product, int64, error)
	GetPublic(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, supplierID string, req *models.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, supplierID, id string, req *models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, supplierID, id string) error
	ListMine(ctx context.Context, supplierID string, page, limit int) ([]models.Product, int64, error)
	Analytics(ctx context.Context, supplierID string) (*models.SupplierAnalytics, error)
	UpdateStatus(ctx context.Context, id string, status models.ProductStatus) (*models.Product, error)
}

// ProductRepo persists products in the supplier partition and reads
// the order aggregations for the supplier dashboard
type ProductRepo interface {
	List(ctx context.Context, filter models.ProductFilter, activeOnly bool) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	ListBySupplier(ctx context.Context, supplierID string, page, limit int) ([]models.Product, int64, error)
	SetStatus(ctx context.Context, id string, status models.ProductStatus) (*models.Product, error)
	SalesSummary(ctx context.Context, supplierID string) (*models.SalesSummary, error)
	TopProducts(ctx context.Context, supplierID string, limit int) ([]models.TopProduct, error)
}
