package sponsored

import (
	"context"

	"github.com/farmchain/backend/internal/pkg/models"
)

// PlacementUC is the sponsored placement usecase interface
type PlacementUC interface {
	ListPublic(ctx context.Context, placement string) ([]models.SponsoredPlacement, error)
	ListMine(ctx context.Context, supplierID string) ([]models.SponsoredPlacement, error)
	Create(ctx context.Context, supplierID string, req *models.CreatePlacementRequest) (*models.SponsoredPlacement, error)
	Update(ctx context.Context, supplierID, id string, req *models.UpdatePlacementRequest) (*models.SponsoredPlacement, error)
	Delete(ctx context.Context, supplierID, id string) error
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/farmchain/backend/services/sponsored PlacementRepo

// PlacementRepo persists sponsored placements in the supplier partition
type PlacementRepo interface {
	ListActive(ctx context.Context, placement string) ([]models.SponsoredPlacement, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]models.SponsoredPlacement, error)
	GetByID(ctx context.Context, id string) (*models.SponsoredPlacement, error)
	Create(ctx context.Context, p *models.SponsoredPlacement) error
	Update(ctx context.Context, id string, req *models.UpdatePlacementRequest) (*models.SponsoredPlacement, error)
	Delete(ctx context.Context, id string) error
}
