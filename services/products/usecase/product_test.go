package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/constants"
	"github.com/farmchain/backend/internal/pkg/models"
	authmocks "github.com/farmchain/backend/services/auth/mocks"
	"github.com/farmchain/backend/services/products/mocks"
)

func newProductTestUC(t *testing.T) (*ProductUC, *mocks.MockProductRepo, *authmocks.MockEventsGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepo(ctrl)
	events := authmocks.NewMockEventsGW(ctrl)
	return NewProductUC(repo, events), repo, events
}

func TestGetPublic_ActiveProduct(t *testing.T) {
	uc, repo, _ := newProductTestUC(t)
	ctx := context.Background()

	product := &models.Product{ID: primitive.NewObjectID(), Status: models.ProductActive, Title: "Urea 50kg"}
	repo.EXPECT().GetByID(ctx, product.ID.Hex()).Return(product, nil)

	got, err := uc.GetPublic(ctx, product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Urea 50kg", got.Title)
}

func TestGetPublic_DraftHidden(t *testing.T) {
	uc, repo, _ := newProductTestUC(t)
	ctx := context.Background()

	product := &models.Product{ID: primitive.NewObjectID(), Status: models.ProductDraft}
	repo.EXPECT().GetByID(ctx, product.ID.Hex()).Return(product, nil)

	_, err := uc.GetPublic(ctx, product.ID.Hex())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreate_DefaultsToDraft(t *testing.T) {
	uc, repo, _ := newProductTestUC(t)
	ctx := context.Background()
	supplierID := primitive.NewObjectID()

	repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Product) error {
			assert.Equal(t, models.ProductDraft, p.Status)
			assert.Equal(t, supplierID, p.SupplierID)
			p.ID = primitive.NewObjectID()
			return nil
		})

	product, err := uc.Create(ctx, supplierID.Hex(), &models.CreateProductRequest{
		Title: "Drip irrigation kit",
		Price: 4999,
	})
	require.NoError(t, err)
	assert.False(t, product.ID.IsZero())
}

func TestUpdate_OwnershipEnforced(t *testing.T) {
	uc, repo, _ := newProductTestUC(t)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	intruder := primitive.NewObjectID()
	product := &models.Product{ID: primitive.NewObjectID(), SupplierID: owner, Status: models.ProductActive}

	repo.EXPECT().GetByID(ctx, product.ID.Hex()).Return(product, nil)

	_, err := uc.Update(ctx, intruder.Hex(), product.ID.Hex(), &models.UpdateProductRequest{})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdate_SupplierCannotSetBlocked(t *testing.T) {
	uc, repo, _ := newProductTestUC(t)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	product := &models.Product{ID: primitive.NewObjectID(), SupplierID: owner}
	repo.EXPECT().GetByID(ctx, product.ID.Hex()).Return(product, nil)

	blocked := models.ProductBlocked
	_, err := uc.Update(ctx, owner.Hex(), product.ID.Hex(), &models.UpdateProductRequest{Status: &blocked})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moderation")
}

func TestUpdateStatus_PublishesEvent(t *testing.T) {
	uc, repo, events := newProductTestUC(t)
	ctx := context.Background()

	product := &models.Product{ID: primitive.NewObjectID(), Status: models.ProductBlocked}
	repo.EXPECT().SetStatus(ctx, product.ID.Hex(), models.ProductBlocked).Return(product, nil)
	events.EXPECT().Publish(constants.TopicProductModerated, gomock.Any()).Return(nil)

	got, err := uc.UpdateStatus(ctx, product.ID.Hex(), models.ProductBlocked)
	require.NoError(t, err)
	assert.Equal(t, models.ProductBlocked, got.Status)
}

func TestAnalytics_BundlesAggregations(t *testing.T) {
	uc, repo, _ := newProductTestUC(t)
	ctx := context.Background()
	supplierID := primitive.NewObjectID().Hex()

	repo.EXPECT().SalesSummary(ctx, supplierID).
		Return(&models.SalesSummary{Revenue: 125000, Orders: 40, Units: 220}, nil)
	repo.EXPECT().TopProducts(ctx, supplierID, 5).
		Return([]models.TopProduct{{Title: "Urea 50kg", Units: 90}}, nil)

	analytics, err := uc.Analytics(ctx, supplierID)
	require.NoError(t, err)
	assert.Equal(t, float64(125000), analytics.Summary.Revenue)
	require.Len(t, analytics.TopProducts, 1)
	assert.Equal(t, "Urea 50kg", analytics.TopProducts[0].Title)
}
