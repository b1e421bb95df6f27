package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/users/mocks"
)

func newUserTestUC(t *testing.T) (*UserUC, *mocks.MockUserRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepo(ctrl)
	return NewUserUC(repo), repo
}

func TestGetProfile_Success(t *testing.T) {
	uc, repo := newUserTestUC(t)
	ctx := context.Background()

	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleFarmer, Name: "Ravi"}
	repo.EXPECT().GetByID(ctx, models.RoleFarmer, user.ID.Hex()).Return(user, nil)

	got, err := uc.GetProfile(ctx, models.RoleFarmer, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Ravi", got.Name)
}

func TestGetProfile_NotFound(t *testing.T) {
	uc, repo := newUserTestUC(t)
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	repo.EXPECT().GetByID(ctx, models.RoleSupplier, id).Return(nil, nil)

	_, err := uc.GetProfile(ctx, models.RoleSupplier, id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetProfile_RepoError(t *testing.T) {
	uc, repo := newUserTestUC(t)
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	repo.EXPECT().GetByID(ctx, models.RoleFarmer, id).Return(nil, fmt.Errorf("connection reset"))

	_, err := uc.GetProfile(ctx, models.RoleFarmer, id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_Success(t *testing.T) {
	uc, repo := newUserTestUC(t)
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	req := &models.UpdateProfileRequest{Name: "Ravi Kumar"}
	updated := &models.User{Role: models.RoleFarmer, Name: "Ravi Kumar"}

	repo.EXPECT().Update(ctx, models.RoleFarmer, id, req).Return(updated, nil)

	got, err := uc.UpdateProfile(ctx, models.RoleFarmer, id, req)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", got.Name)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	uc, repo := newUserTestUC(t)
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	repo.EXPECT().Update(ctx, models.RoleFarmer, id, gomock.Any()).Return(nil, nil)

	_, err := uc.UpdateProfile(ctx, models.RoleFarmer, id, &models.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
