package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/sponsored/mocks"
)

func newPlacementTestUC(t *testing.T) (*PlacementUC, *mocks.MockPlacementRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPlacementRepo(ctrl)
	return NewPlacementUC(repo), repo
}

func TestCreatePlacement_DefaultsToDraft(t *testing.T) {
	uc, repo := newPlacementTestUC(t)
	ctx := context.Background()
	supplierID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.SponsoredPlacement) error {
			assert.Equal(t, models.PlacementDraft, p.Status)
			assert.Equal(t, supplierID, p.SupplierID)
			assert.Equal(t, productID, p.ProductID)
			p.ID = primitive.NewObjectID()
			return nil
		})

	p, err := uc.Create(ctx, supplierID.Hex(), &models.CreatePlacementRequest{
		ProductID: productID.Hex(),
		Title:     "Organic urea, monsoon offer",
		Placement: "home_banner",
		Budget:    5000,
		CPC:       2.5,
	})
	require.NoError(t, err)
	assert.False(t, p.ID.IsZero())
}

func TestUpdatePlacement_OwnershipEnforced(t *testing.T) {
	uc, repo := newPlacementTestUC(t)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	intruder := primitive.NewObjectID()
	placement := &models.SponsoredPlacement{
		ID:         primitive.NewObjectID(),
		SupplierID: owner,
	}

	repo.EXPECT().GetByID(ctx, placement.ID.Hex()).Return(placement, nil)

	title := "hijacked"
	_, err := uc.Update(ctx, intruder.Hex(), placement.ID.Hex(), &models.UpdatePlacementRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdatePlacement_NotFound(t *testing.T) {
	uc, repo := newPlacementTestUC(t)
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	repo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	_, err := uc.Update(ctx, primitive.NewObjectID().Hex(), id, &models.UpdatePlacementRequest{})
	assert.ErrorIs(t, err, ErrPlacementNotFound)
}

func TestDeletePlacement_Owner(t *testing.T) {
	uc, repo := newPlacementTestUC(t)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	placement := &models.SponsoredPlacement{
		ID:         primitive.NewObjectID(),
		SupplierID: owner,
	}

	repo.EXPECT().GetByID(ctx, placement.ID.Hex()).Return(placement, nil)
	repo.EXPECT().Delete(ctx, placement.ID.Hex()).Return(nil)

	err := uc.Delete(ctx, owner.Hex(), placement.ID.Hex())
	require.NoError(t, err)
}

func TestListPublic_PassesSlotFilter(t *testing.T) {
	uc, repo := newPlacementTestUC(t)
	ctx := context.Background()

	repo.EXPECT().ListActive(ctx, "search_top").
		Return([]models.SponsoredPlacement{{Title: "Drip irrigation kit"}}, nil)

	items, err := uc.ListPublic(ctx, "search_top")
	require.NoError(t, err)
	require.Len(t, items, 1)
}
