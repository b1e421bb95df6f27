package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmchain/backend/internal/pkg/constants"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/auth"
)

const adminPassword = "correct-horse-battery"

func newAdminTestUC(t *testing.T) (*AuthUC, *testDeps) {
	t.Helper()
	uc, deps := newTestUC(t, "development")

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	uc.cfg.Admin.PasswordHash = string(hash)

	return uc, deps
}

func TestAdminLogin_Success(t *testing.T) {
	uc, deps := newAdminTestUC(t)
	ctx := context.Background()

	adminUser := &models.User{
		ID:    primitive.NewObjectID(),
		Role:  models.RoleAdmin,
		Email: "admin@farmchain.in",
	}

	deps.userRepo.EXPECT().EnsureAdmin(ctx, "admin@farmchain.in").Return(adminUser, nil)
	deps.userRepo.EXPECT().RecordLogin(ctx, models.RoleAdmin, adminUser.ID.Hex(), gomock.Any()).
		Return(adminUser, nil)
	deps.eventsGW.EXPECT().Publish(constants.TopicUserLoggedIn, gomock.Any()).Return(nil)

	resp, err := uc.AdminLogin(ctx, &models.AdminLoginRequest{
		Email:    "admin@farmchain.in",
		Password: adminPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
}

func TestAdminLogin_EmailCaseInsensitive(t *testing.T) {
	uc, deps := newAdminTestUC(t)
	ctx := context.Background()

	adminUser := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}

	deps.userRepo.EXPECT().EnsureAdmin(ctx, "admin@farmchain.in").Return(adminUser, nil)
	deps.userRepo.EXPECT().RecordLogin(ctx, models.RoleAdmin, adminUser.ID.Hex(), gomock.Any()).
		Return(adminUser, nil)
	deps.eventsGW.EXPECT().Publish(constants.TopicUserLoggedIn, gomock.Any()).Return(nil)

	_, err := uc.AdminLogin(ctx, &models.AdminLoginRequest{
		Email:    "Admin@FarmChain.in",
		Password: adminPassword,
	})
	require.NoError(t, err)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	uc, _ := newAdminTestUC(t)

	resp, err := uc.AdminLogin(context.Background(), &models.AdminLoginRequest{
		Email:    "admin@farmchain.in",
		Password: "not-the-password",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAdminLogin_UnknownEmail(t *testing.T) {
	uc, _ := newAdminTestUC(t)

	resp, err := uc.AdminLogin(context.Background(), &models.AdminLoginRequest{
		Email:    "intruder@example.com",
		Password: adminPassword,
	})
	assert.Nil(t, resp)
	// Same error as a wrong password, nothing to enumerate
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
