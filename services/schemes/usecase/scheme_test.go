package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/schemes/mocks"
)

func newSchemeTestUC(t *testing.T) (*SchemeUC, *mocks.MockSchemeRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSchemeRepo(ctrl)
	return NewSchemeUC(repo), repo
}

func TestList_PassesFilterThrough(t *testing.T) {
	uc, repo := newSchemeTestUC(t)
	ctx := context.Background()

	filter := models.SchemeFilter{
		State: "Karnataka",
		Tags:  []string{"irrigation", "subsidy"},
	}
	repo.EXPECT().ListActive(ctx, filter).Return([]models.Scheme{
		{Title: "Drip Irrigation Subsidy", IsActive: true},
	}, nil)

	got, err := uc.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Drip Irrigation Subsidy", got[0].Title)
}

func TestCreate_DefaultsToActive(t *testing.T) {
	uc, repo := newSchemeTestUC(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Scheme) error {
			assert.True(t, s.IsActive)
			// List fields are stored as empty arrays, never null
			assert.NotNil(t, s.Benefits)
			assert.NotNil(t, s.Tags)
			s.ID = primitive.NewObjectID()
			return nil
		})

	s, err := uc.Create(ctx, &models.CreateSchemeRequest{
		Title:      "PM-KISAN Income Support",
		Department: "Ministry of Agriculture",
	})
	require.NoError(t, err)
	assert.False(t, s.ID.IsZero())
}

func TestCreate_RespectsInactiveFlag(t *testing.T) {
	uc, repo := newSchemeTestUC(t)
	ctx := context.Background()

	inactive := false
	repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Scheme) error {
			assert.False(t, s.IsActive)
			return nil
		})

	_, err := uc.Create(ctx, &models.CreateSchemeRequest{
		Title:    "Soil Health Card",
		IsActive: &inactive,
	})
	require.NoError(t, err)
}

func TestUpdate_NotFound(t *testing.T) {
	uc, repo := newSchemeTestUC(t)
	ctx := context.Background()

	id := primitive.NewObjectID().Hex()
	repo.EXPECT().Update(ctx, id, gomock.Any()).Return(nil, nil)

	_, err := uc.Update(ctx, id, &models.UpdateSchemeRequest{})
	assert.ErrorIs(t, err, ErrSchemeNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	uc, repo := newSchemeTestUC(t)
	ctx := context.Background()

	id := primitive.NewObjectID().Hex()
	repo.EXPECT().Delete(ctx, id).Return(false, nil)

	err := uc.Delete(ctx, id)
	assert.ErrorIs(t, err, ErrSchemeNotFound)
}

func TestDelete_Found(t *testing.T) {
	uc, repo := newSchemeTestUC(t)
	ctx := context.Background()

	id := primitive.NewObjectID().Hex()
	repo.EXPECT().Delete(ctx, id).Return(true, nil)

	require.NoError(t, uc.Delete(ctx, id))
}
