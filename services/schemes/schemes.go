package schemes

import (
	"context"

	"github.com/farmchain/backend/internal/pkg/models"
)

// SchemeUC is the government scheme usecase interface
type SchemeUC interface {
	List(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error)
	Create(ctx context.Context, req *models.CreateSchemeRequest) (*models.Scheme, error)
	Update(ctx context.Context, id string, req *models.UpdateSchemeRequest) (*models.Scheme, error)
	Delete(ctx context.Context, id string) error
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/farmchain/backend/services/schemes SchemeRepo

// SchemeRepo persists schemes in the admin partition
type SchemeRepo interface {
	ListActive(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error)
	Create(ctx context.Context, s *models.Scheme) error
	Update(ctx context.Context, id string, req *models.UpdateSchemeRequest) (*models.Scheme, error)
	Delete(ctx context.Context, id string) (bool, error)
}
