package users

import (
	"context"

	"github.com/farmchain/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/farmchain/backend/services/users UserUC
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/farmchain/backend/services/users UserRepo

// UserUC is the user profile usecase interface
type UserUC interface {
	GetProfile(ctx context.Context, role models.Role, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, role models.Role, id string, req *models.UpdateProfileRequest) (*models.User, error)
}

// UserRepo is the role-sharded user repository. Every method takes the
// role explicitly; there is no cross-partition lookup. GetByID and
// GetByPhone return (nil, nil) when no document matches.
type UserRepo interface {
	GetByID(ctx context.Context, role models.Role, id string) (*models.User, error)
	GetByPhone(ctx context.Context, role models.Role, phone string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, role models.Role, id string, req *models.UpdateProfileRequest) (*models.User, error)
	RecordLogin(ctx context.Context, role models.Role, id string, hints models.ProfileHints) (*models.User, error)
	EnsureAdmin(ctx context.Context, email string) (*models.User, error)
}
