package lands

import (
	"context"

	"github.com/farmchain/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/farmchain/backend/services/lands LandRepo

// LandUC is the land parcel usecase interface
type LandUC interface {
	Register(ctx context.Context, farmerID string, req *models.RegisterLandRequest) (*models.Land, error)
	ListMine(ctx context.Context, farmerID string) ([]models.Land, error)
	Nearby(ctx context.Context, query models.NearbyLandsQuery) ([]models.Land, error)
	ListPending(ctx context.Context, page, limit int) ([]models.Land, int64, error)
	Review(ctx context.Context, adminID, landID string, req *models.ReviewLandRequest) (*models.Land, error)
}

// LandRepo persists land parcels in the farmer partition
type LandRepo interface {
	Create(ctx context.Context, land *models.Land) error
	GetByID(ctx context.Context, id string) (*models.Land, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]models.Land, error)
	ListByGeohashPrefixes(ctx context.Context, prefixes []string, limit int) ([]models.Land, error)
	ListPending(ctx context.Context, page, limit int) ([]models.Land, int64, error)
	ApplyReview(ctx context.Context, id string, verified bool, note models.VerificationNote) (*models.Land, error)
}
