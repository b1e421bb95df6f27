package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/farmchain/backend/internal/pkg/constants"
	jwtpkg "github.com/farmchain/backend/internal/pkg/jwt"
	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
	"github.com/farmchain/backend/services/auth"
)

// SendOTP issues a one-time code for the phone and hands it to the SMS
// gateway. A throttled request is a normal outcome carried in the
// result; only validation and infrastructure failures are errors.
func (uc *AuthUC) SendOTP(ctx context.Context, phone string) (*models.SendOTPResult, error) {
	ok, normalized, err := utils.ValidatePhone(phone)
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: %s", auth.ErrInvalidPhone, phone)
	}

	rate, err := uc.cache.ReserveSend(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to check rate limit: %w", err)
	}
	if rate.Limited {
		logger.Warn("OTP request throttled",
			logger.String("phone", normalized),
			logger.Int("time_left", rate.TimeLeft))
		return &models.SendOTPResult{RateLimited: true, TimeLeft: rate.TimeLeft}, nil
	}

	code, err := generateCode(uc.cfg.OTP.Length)
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp: %w", err)
	}

	if err := uc.cache.Issue(ctx, normalized, code); err != nil {
		return nil, fmt.Errorf("failed to store otp: %w", err)
	}

	if err := uc.smsGW.Send(ctx, normalized, code); err != nil {
		return nil, fmt.Errorf("failed to deliver otp: %w", err)
	}

	result := &models.SendOTPResult{}
	if uc.cfg.OTP.EchoInDev && uc.cfg.App.Environment != "production" {
		result.EchoOTP = code
	}

	logger.Info("OTP issued", logger.String("phone", normalized))
	return result, nil
}

// VerifyOTP checks the submitted code and, on success, resolves or
// creates the user in the role partition and mints a token. A wrong,
// expired, missing or exhausted code is returned in the verify result,
// not as an error.
func (uc *AuthUC) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, *models.OTPVerifyResult, error) {
	ok, normalized, err := utils.ValidatePhone(req.Phone)
	if err != nil || !ok {
		return nil, nil, fmt.Errorf("%w: %s", auth.ErrInvalidPhone, req.Phone)
	}

	role := req.Role
	if role == "" {
		role = models.RoleFarmer
	}
	if !role.Valid() {
		return nil, nil, fmt.Errorf("%w: %s", auth.ErrInvalidRole, req.Role)
	}

	result, err := uc.cache.Verify(ctx, normalized, req.OTP)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to verify otp: %w", err)
	}
	if !result.Valid() {
		logger.Warn("OTP verification rejected",
			logger.String("phone", normalized),
			logger.String("status", string(result.Status)),
			logger.Int("attempts_left", result.AttemptsLeft))
		return nil, &result, nil
	}

	hints := models.ProfileHints{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
	}

	user, err := uc.userRepo.GetByPhone(ctx, role, normalized)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		user, err = uc.registerUser(ctx, role, normalized, hints)
		if err != nil {
			return nil, nil, err
		}
	} else {
		user, err = uc.userRepo.RecordLogin(ctx, role, user.ID.Hex(), hints)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to record login: %w", err)
		}
		uc.publish(constants.TopicUserLoggedIn, map[string]interface{}{
			"user_id": user.ID.Hex(),
			"role":    string(user.Role),
		})
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user, uc.cfg.JWT)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, &result, nil
}

// registerUser creates a first-login user in the role partition
func (uc *AuthUC) registerUser(ctx context.Context, role models.Role, phone string, hints models.ProfileHints) (*models.User, error) {
	now := time.Now()
	user := &models.User{
		Role:          role,
		Phone:         phone,
		PhoneVerified: true,
		Name:          hints.Name,
		Email:         hints.Email,
		Company:       hints.Company,
		LastLogin:     &now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.Hex()),
		logger.String("role", string(role)))

	uc.publish(constants.TopicUserRegistered, map[string]interface{}{
		"user_id": user.ID.Hex(),
		"role":    string(role),
		"phone":   phone,
	})

	return user, nil
}

// publish sends a domain event; delivery is best effort and never
// fails the caller's request
func (uc *AuthUC) publish(topic string, payload interface{}) {
	if err := uc.eventsGW.Publish(topic, payload); err != nil {
		logger.Warn("Failed to publish event",
			logger.String("topic", topic),
			logger.Err(err))
	}
}

// generateCode produces a random numeric code of the given length
func generateCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
