package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/constants"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/auth"
	"github.com/farmchain/backend/services/auth/mocks"
)

type testDeps struct {
	cache    *mocks.MockOTPCache
	userRepo *mocks.MockUserRepo
	smsGW    *mocks.MockSMSGW
	eventsGW *mocks.MockEventsGW
}

func newTestUC(t *testing.T, env string) (*AuthUC, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		cache:    mocks.NewMockOTPCache(ctrl),
		userRepo: mocks.NewMockUserRepo(ctrl),
		smsGW:    mocks.NewMockSMSGW(ctrl),
		eventsGW: mocks.NewMockEventsGW(ctrl),
	}

	cfg := &models.Config{
		App: models.AppConfig{Environment: env},
		JWT: models.JWTConfig{
			Secret:     "usecase-test-secret",
			Expiration: 60,
			Issuer:     "farmchain-test",
		},
		OTP: models.OTPConfig{
			Length:         6,
			TTLSeconds:     300,
			MaxAttempts:    5,
			CooldownSecs:   60,
			MaxPerCooldown: 5,
			EchoInDev:      true,
		},
		Admin: models.AdminConfig{
			Email: "admin@farmchain.in",
		},
	}

	return NewAuthUC(deps.cache, deps.userRepo, deps.smsGW, deps.eventsGW, cfg), deps
}

const testPhone = "9876543210"

func TestSendOTP_Success(t *testing.T) {
	uc, deps := newTestUC(t, "development")
	ctx := context.Background()

	var issued string
	deps.cache.EXPECT().ReserveSend(ctx, testPhone).Return(models.RateLimitResult{}, nil)
	deps.cache.EXPECT().Issue(ctx, testPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, code string) error {
			issued = code
			return nil
		})
	deps.smsGW.EXPECT().Send(ctx, testPhone, gomock.Any()).Return(nil)

	result, err := uc.SendOTP(ctx, testPhone)
	require.NoError(t, err)
	assert.False(t, result.RateLimited)
	assert.Len(t, issued, 6)
	// Dev echo returns the same code the SMS carries
	assert.Equal(t, issued, result.EchoOTP)
}

func TestSendOTP_NoEchoInProduction(t *testing.T) {
	uc, deps := newTestUC(t, "production")
	ctx := context.Background()

	deps.cache.EXPECT().ReserveSend(ctx, testPhone).Return(models.RateLimitResult{}, nil)
	deps.cache.EXPECT().Issue(ctx, testPhone, gomock.Any()).Return(nil)
	deps.smsGW.EXPECT().Send(ctx, testPhone, gomock.Any()).Return(nil)

	result, err := uc.SendOTP(ctx, testPhone)
	require.NoError(t, err)
	assert.Empty(t, result.EchoOTP)
}

func TestSendOTP_RateLimited(t *testing.T) {
	uc, deps := newTestUC(t, "development")
	ctx := context.Background()

	deps.cache.EXPECT().ReserveSend(ctx, testPhone).
		Return(models.RateLimitResult{Limited: true, TimeLeft: 42}, nil)

	result, err := uc.SendOTP(ctx, testPhone)
	require.NoError(t, err)
	assert.True(t, result.RateLimited)
	assert.Equal(t, 42, result.TimeLeft)
}

func TestSendOTP_InvalidPhone(t *testing.T) {
	uc, _ := newTestUC(t, "development")

	_, err := uc.SendOTP(context.Background(), "12345")
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInvalidPhone)
}

func TestSendOTP_NormalizesPhone(t *testing.T) {
	uc, deps := newTestUC(t, "development")
	ctx := context.Background()

	deps.cache.EXPECT().ReserveSend(ctx, "919876543210").Return(models.RateLimitResult{}, nil)
	deps.cache.EXPECT().Issue(ctx, "919876543210", gomock.Any()).Return(nil)
	deps.smsGW.EXPECT().Send(ctx, "919876543210", gomock.Any()).Return(nil)

	_, err := uc.SendOTP(ctx, "+91 98765 43210")
	require.NoError(t, err)
}

func TestSendOTP_SMSDeliveryFails(t *testing.T) {
	uc, deps := newTestUC(t, "development")
	ctx := context.Background()

	deps.cache.EXPECT().ReserveSend(ctx, testPhone).Return(models.RateLimitResult{}, nil)
	deps.cache.EXPECT().Issue(ctx, testPhone, gomock.Any()).Return(nil)
	deps.smsGW.EXPECT().Send(ctx, testPhone, gomock.Any()).Return(fmt.Errorf("provider down"))

	_, err := uc.SendOTP(ctx, testPhone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to deliver otp")
}

func TestVerifyOTP_NewUserRegistered(t *testing.T) {
	uc, deps := newTestUC(t, "development")
	ctx := context.Background()

	deps.cache.EXPECT().Verify(ctx, testPhone, "482913").
		Return(models.OTPVerifyResult{Status: models.OTPValid}, nil)
	deps.userRepo.EXPECT().GetByPhone(ctx, models.RoleFarmer, testPhone).Return(nil, nil)
	deps.userRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			user.ID = primitive.NewObjectID()
			assert.Equal(t, models.RoleFarmer, user.Role)
			assert.Equal(t, testPhone, user.Phone)
			assert.True(t, user.PhoneVerified)
			assert.Equal(t, "Ravi", user.Name)
			return nil
		})
	deps.eventsGW.EXPECT().Publish(constants.TopicUserRegistered, gomock.Any()).Return(nil)

	resp, result, err := uc.VerifyOTP(ctx, &models.VerifyOTPRequest{
		Phone: testPhone,
		OTP:   "482913",
		Name:  "Ravi",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Valid())
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleFarmer, resp.User.Role)
}

func TestVerifyOTP_ExistingUserLogsIn(t *testing.T) {
	uc, deps := newTestUC(t, "development")
	ctx := context.Background()

	existing := &models.User{
		ID:    primitive.NewObjectID(),
		Role:  models.RoleSupplier,
		Phone: testPhone,
	}

	deps.cache.EXPECT().Verify(ctx, testPhone, "482913").
		Return(models.OTPVerifyResult{Status: models.OTPValid}, nil)
	deps.userRepo.EXPECT().GetByPhone(ctx, models.RoleSupplier, testPhone).Return(existing, nil)
	deps.userRepo.EXPECT().RecordLogin(ctx, models.RoleSupplier, existing.ID.Hex(), gomock.Any()).
		Return(existing, nil)
	deps.eventsGW.EXPECT().Publish(constants.TopicUserLoggedIn, gomock.Any()).Return(nil)

	resp, result, err := uc.VerifyOTP(ctx, &models.VerifyOTPRequest{
		Phone: testPhone,
		OTP:   "482913",
		Role:  models.RoleSupplier,
	})
	require.NoError(t, err)
	assert.True(t, result.Valid())
	assert.Equal(t, existing.ID, resp.User.ID)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	uc, deps := newTestUC(t, "development")
	ctx := context.Background()

	deps.cache.EXPECT().Verify(ctx, testPhone, "000000").
		Return(models.OTPVerifyResult{Status: models.OTPInvalid, AttemptsLeft: 4}, nil)

	resp, result, err := uc.VerifyOTP(ctx, &models.VerifyOTPRequest{
		Phone: testPhone,
		OTP:   "000000",
	})
	require.NoError(t, err)
	assert.Nil(t, resp)
	require.NotNil(t, result)
	assert.Equal(t, models.OTPInvalid, result.Status)
	assert.Equal(t, 4, result.AttemptsLeft)
}

func TestVerifyOTP_RoleDefaultsToFarmer(t *testing.T) {
	uc, deps := newTestUC(t, "development")
	ctx := context.Background()

	deps.cache.EXPECT().Verify(ctx, testPhone, "482913").
		Return(models.OTPVerifyResult{Status: models.OTPValid}, nil)
	deps.userRepo.EXPECT().GetByPhone(ctx, models.RoleFarmer, testPhone).Return(nil, nil)
	deps.userRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			user.ID = primitive.NewObjectID()
			return nil
		})
	deps.eventsGW.EXPECT().Publish(constants.TopicUserRegistered, gomock.Any()).Return(nil)

	resp, _, err := uc.VerifyOTP(ctx, &models.VerifyOTPRequest{Phone: testPhone, OTP: "482913"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleFarmer, resp.User.Role)
}

func TestVerifyOTP_InvalidRole(t *testing.T) {
	uc, _ := newTestUC(t, "development")

	_, _, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		Phone: testPhone,
		OTP:   "482913",
		Role:  models.Role("superuser"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInvalidRole)
}

func TestVerifyOTP_SamePhoneDistinctPartitions(t *testing.T) {
	// The same phone verified as farmer and as supplier resolves to
	// two different users
	uc, deps := newTestUC(t, "development")
	ctx := context.Background()

	farmer := &models.User{ID: primitive.NewObjectID(), Role: models.RoleFarmer, Phone: testPhone}
	supplier := &models.User{ID: primitive.NewObjectID(), Role: models.RoleSupplier, Phone: testPhone}

	deps.cache.EXPECT().Verify(ctx, testPhone, "111111").
		Return(models.OTPVerifyResult{Status: models.OTPValid}, nil)
	deps.userRepo.EXPECT().GetByPhone(ctx, models.RoleFarmer, testPhone).Return(farmer, nil)
	deps.userRepo.EXPECT().RecordLogin(ctx, models.RoleFarmer, farmer.ID.Hex(), gomock.Any()).Return(farmer, nil)
	deps.eventsGW.EXPECT().Publish(constants.TopicUserLoggedIn, gomock.Any()).Return(nil)

	respFarmer, _, err := uc.VerifyOTP(ctx, &models.VerifyOTPRequest{
		Phone: testPhone, OTP: "111111", Role: models.RoleFarmer,
	})
	require.NoError(t, err)

	deps.cache.EXPECT().Verify(ctx, testPhone, "222222").
		Return(models.OTPVerifyResult{Status: models.OTPValid}, nil)
	deps.userRepo.EXPECT().GetByPhone(ctx, models.RoleSupplier, testPhone).Return(supplier, nil)
	deps.userRepo.EXPECT().RecordLogin(ctx, models.RoleSupplier, supplier.ID.Hex(), gomock.Any()).Return(supplier, nil)
	deps.eventsGW.EXPECT().Publish(constants.TopicUserLoggedIn, gomock.Any()).Return(nil)

	respSupplier, _, err := uc.VerifyOTP(ctx, &models.VerifyOTPRequest{
		Phone: testPhone, OTP: "222222", Role: models.RoleSupplier,
	})
	require.NoError(t, err)

	assert.NotEqual(t, respFarmer.User.ID, respSupplier.User.ID)
}

func TestVerifyOTP_EventFailureDoesNotFailLogin(t *testing.T) {
	uc, deps := newTestUC(t, "development")
	ctx := context.Background()

	existing := &models.User{ID: primitive.NewObjectID(), Role: models.RoleFarmer, Phone: testPhone}

	deps.cache.EXPECT().Verify(ctx, testPhone, "482913").
		Return(models.OTPVerifyResult{Status: models.OTPValid}, nil)
	deps.userRepo.EXPECT().GetByPhone(ctx, models.RoleFarmer, testPhone).Return(existing, nil)
	deps.userRepo.EXPECT().RecordLogin(ctx, models.RoleFarmer, existing.ID.Hex(), gomock.Any()).
		Return(existing, nil)
	deps.eventsGW.EXPECT().Publish(constants.TopicUserLoggedIn, gomock.Any()).
		Return(fmt.Errorf("broker down"))

	resp, _, err := uc.VerifyOTP(ctx, &models.VerifyOTPRequest{Phone: testPhone, OTP: "482913"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestGenerateCode(t *testing.T) {
	code, err := generateCode(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}

	// Non-positive lengths fall back to six digits
	code, err = generateCode(0)
	require.NoError(t, err)
	assert.Len(t, code, 6)
}
