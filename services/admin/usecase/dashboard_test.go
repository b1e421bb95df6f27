package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/admin/mocks"
)

func newAdminTestUC(t *testing.T) (*AdminUC, *mocks.MockDashboardRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepo(ctrl)
	return NewAdminUC(repo), repo
}

func TestOverview_BundlesCounters(t *testing.T) {
	uc, repo := newAdminTestUC(t)
	ctx := context.Background()

	repo.EXPECT().CountUsers(ctx, models.RoleFarmer).Return(int64(120), nil)
	repo.EXPECT().CountUsers(ctx, models.RoleSupplier).Return(int64(35), nil)
	repo.EXPECT().CountProducts(ctx).Return(int64(480), nil)
	repo.EXPECT().CountLands(ctx).Return(int64(210), nil)
	repo.EXPECT().CountPendingLands(ctx).Return(int64(14), nil)

	overview, err := uc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), overview.FarmerCount)
	assert.Equal(t, int64(35), overview.SupplierCount)
	assert.Equal(t, int64(480), overview.ProductCount)
	assert.Equal(t, int64(210), overview.LandCount)
	assert.Equal(t, int64(14), overview.PendingLands)
}

func TestOverview_FailsOnAnyCounter(t *testing.T) {
	uc, repo := newAdminTestUC(t)
	ctx := context.Background()

	repo.EXPECT().CountUsers(ctx, models.RoleFarmer).Return(int64(0), errors.New("partition down"))

	_, err := uc.Overview(ctx)
	assert.Error(t, err)
}

func TestReports_BundlesAggregations(t *testing.T) {
	uc, repo := newAdminTestUC(t)
	ctx := context.Background()

	supplierID := primitive.NewObjectID()
	repo.EXPECT().PlatformSummary(ctx).
		Return(&models.SalesSummary{Revenue: 250000, Orders: 84, Units: 530}, nil)
	repo.EXPECT().TopSuppliers(ctx, topSupplierLimit).
		Return([]models.TopSupplier{{SupplierID: supplierID, Orders: 40, Total: 180000}}, nil)

	reports, err := uc.Reports(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(250000), reports.Summary.Revenue)
	require.Len(t, reports.TopSuppliers, 1)
	assert.Equal(t, supplierID, reports.TopSuppliers[0].SupplierID)
}

func TestListUsers_PassesThrough(t *testing.T) {
	uc, repo := newAdminTestUC(t)
	ctx := context.Background()

	repo.EXPECT().ListUsers(ctx, models.RoleSupplier, 2, 50).
		Return([]models.User{{Role: models.RoleSupplier}}, int64(51), nil)

	items, total, err := uc.ListUsers(ctx, models.RoleSupplier, 2, 50)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(51), total)
}
