package admin

import (
	"context"

	"github.com/farmchain/backend/internal/pkg/models"
)

// AdminUC is the admin dashboard usecase interface
type AdminUC interface {
	Overview(ctx context.Context) (*models.AdminOverview, error)
	Reports(ctx context.Context) (*models.AdminReports, error)
	ListUsers(ctx context.Context, role models.Role, page, limit int) ([]models.User, int64, error)
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/farmchain/backend/services/admin DashboardRepo

// DashboardRepo runs the cross-partition counting and reporting queries
type DashboardRepo interface {
	CountUsers(ctx context.Context, role models.Role) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountLands(ctx context.Context) (int64, error)
	CountPendingLands(ctx context.Context) (int64, error)
	PlatformSummary(ctx context.Context) (*models.SalesSummary, error)
	TopSuppliers(ctx context.Context, limit int) ([]models.TopSupplier, error)
	ListUsers(ctx context.Context, role models.Role, page, limit int) ([]models.User, int64, error)
}
