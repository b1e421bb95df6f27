package usecase

import (
	"github.com/farmchain/backend/services/users"
)

// UserUC implements the user profile usecase
type UserUC struct {
	userRepo users.UserRepo
}

// NewUserUC creates a new user usecase instance
func NewUserUC(userRepo users.UserRepo) *UserUC {
	return &UserUC{userRepo: userRepo}
}
