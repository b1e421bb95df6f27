package usecase

import (
	"context"

	"github.com/farmchain/backend/internal/pkg/models"
)

const topSupplierLimit = 10

// Overview gathers the dashboard counters. The counts hit different
// partitions, so a failure in any one of them fails the whole call
// rather than serving a partially-zero dashboard.
func (uc *AdminUC) Overview(ctx context.Context) (*models.AdminOverview, error) {
	farmers, err := uc.repo.CountUsers(ctx, models.RoleFarmer)
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.repo.CountUsers(ctx, models.RoleSupplier)
	if err != nil {
		return nil, err
	}
	products, err := uc.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	lands, err := uc.repo.CountLands(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := uc.repo.CountPendingLands(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AdminOverview{
		FarmerCount:   farmers,
		SupplierCount: suppliers,
		ProductCount:  products,
		LandCount:     lands,
		PendingLands:  pending,
	}, nil
}

// Reports bundles the platform-wide sales aggregations
func (uc *AdminUC) Reports(ctx context.Context) (*models.AdminReports, error) {
	summary, err := uc.repo.PlatformSummary(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopSuppliers(ctx, topSupplierLimit)
	if err != nil {
		return nil, err
	}

	return &models.AdminReports{
		Summary:      *summary,
		TopSuppliers: top,
	}, nil
}

// ListUsers pages through one role partition
func (uc *AdminUC) ListUsers(ctx context.Context, role models.Role, page, limit int) ([]models.User, int64, error) {
	return uc.repo.ListUsers(ctx, role, page, limit)
}
