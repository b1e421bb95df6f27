package messages

import (
	"context"

	"github.com/farmchain/backend/internal/pkg/models"
)

// MessageUC is the direct messaging usecase interface
type MessageUC interface {
	Send(ctx context.Context, sender *models.User, req *models.CreateMessageRequest) (*models.Message, error)
	ListThreads(ctx context.Context, userID string) ([]models.Thread, error)
	ListThread(ctx context.Context, userID, threadID string) ([]models.Message, error)
	MarkRead(ctx context.Context, userID, messageID string) (*models.Message, error)
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/farmchain/backend/services/messages MessageRepo

// MessageRepo persists messages in the shared admin partition so both
// sides of a cross-role conversation read the same collection
type MessageRepo interface {
	Create(ctx context.Context, m *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	ListThreads(ctx context.Context, userID string) ([]models.Thread, error)
	ListByThread(ctx context.Context, threadID string) ([]models.Message, error)
	MarkRead(ctx context.Context, id string) (*models.Message, error)
}
