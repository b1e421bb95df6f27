package usecase

import (
	"github.com/farmchain/backend/services/messages"
	"github.com/farmchain/backend/services/users"
)

// MessageUC implements messages.MessageUC
type MessageUC struct {
	repo     messages.MessageRepo
	userRepo users.UserRepo
}

// NewMessageUC creates the messaging usecase
func NewMessageUC(repo messages.MessageRepo, userRepo users.UserRepo) *MessageUC {
	return &MessageUC{
		repo:     repo,
		userRepo: userRepo,
	}
}
