package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/farmchain/backend/internal/pkg/constants"
	jwtpkg "github.com/farmchain/backend/internal/pkg/jwt"
	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/auth"
)

// AdminLogin authenticates the bootstrap admin with email and
// password. Admins are the only role with a password path; regular
// users always go through the OTP flow.
func (uc *AuthUC) AdminLogin(ctx context.Context, req *models.AdminLoginRequest) (*models.AuthResponse, error) {
	if !strings.EqualFold(req.Email, uc.cfg.Admin.Email) {
		// Burn comparable time so unknown emails are not distinguishable
		// from wrong passwords by latency
		_ = bcrypt.CompareHashAndPassword([]byte(uc.cfg.Admin.PasswordHash), []byte(req.Password))
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.Admin.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Admin login rejected", logger.String("email", req.Email))
		return nil, auth.ErrInvalidCredentials
	}

	user, err := uc.userRepo.EnsureAdmin(ctx, uc.cfg.Admin.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve admin user: %w", err)
	}

	user, err = uc.userRepo.RecordLogin(ctx, models.RoleAdmin, user.ID.Hex(), models.ProfileHints{})
	if err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.publish(constants.TopicUserLoggedIn, map[string]interface{}{
		"user_id": user.ID.Hex(),
		"role":    string(models.RoleAdmin),
	})

	logger.Info("Admin logged in", logger.String("user_id", user.ID.Hex()))

	return &models.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}
