package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/farmchain/backend/internal/pkg/models"
)

// ErrUserNotFound marks a lookup that matched no document in the
// partition
var ErrUserNotFound = errors.New("user not found")

// GetProfile returns the user's own profile
func (uc *UserUC) GetProfile(ctx context.Context, role models.Role, id string) (*models.User, error) {
	user, err := uc.userRepo.GetByID(ctx, role, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies a partial update to the user's own profile
func (uc *UserUC) UpdateProfile(ctx context.Context, role models.Role, id string, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := uc.userRepo.Update(ctx, role, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
