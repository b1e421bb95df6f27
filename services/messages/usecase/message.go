package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/models"
)

var (
	// ErrRecipientNotFound is returned when the addressee does not exist
	ErrRecipientNotFound = errors.New("recipient not found")
	// ErrMessageNotFound is returned when the message id resolves to nothing
	ErrMessageNotFound = errors.New("message not found")
	// ErrNotParticipant is returned when a user reads a thread they are not part of
	ErrNotParticipant = errors.New("not a participant of this thread")
)

// ThreadID derives the conversation key for a pair of users. The two
// ids are sorted so both directions of the exchange land in the same
// thread.
func ThreadID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}

// Send validates the recipient and stores the message
func (uc *MessageUC) Send(ctx context.Context, sender *models.User, req *models.CreateMessageRequest) (*models.Message, error) {
	recipient, err := uc.resolveRecipient(ctx, req.RecipientID, req.RecipientRole)
	if err != nil {
		return nil, err
	}

	m := &models.Message{
		ThreadID:      ThreadID(sender.ID.Hex(), recipient.ID.Hex()),
		SenderID:      sender.ID,
		RecipientID:   recipient.ID,
		SenderRole:    sender.Role,
		RecipientRole: recipient.Role,
		Subject:       req.Subject,
		Body:          req.Body,
		Meta:          req.Meta,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListThreads returns the user's conversations, newest first
func (uc *MessageUC) ListThreads(ctx context.Context, userID string) ([]models.Thread, error) {
	return uc.repo.ListThreads(ctx, userID)
}

// ListThread returns a conversation's messages oldest first. Only the
// two participants encoded in the thread id may read it.
func (uc *MessageUC) ListThread(ctx context.Context, userID, threadID string) ([]models.Message, error) {
	if !threadHasParticipant(threadID, userID) {
		return nil, ErrNotParticipant
	}
	return uc.repo.ListByThread(ctx, threadID)
}

// MarkRead stamps a message as read. Only the recipient may do so.
func (uc *MessageUC) MarkRead(ctx context.Context, userID, messageID string) (*models.Message, error) {
	m, err := uc.repo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMessageNotFound
	}
	if m.RecipientID.Hex() != userID {
		return nil, ErrNotParticipant
	}
	return uc.repo.MarkRead(ctx, messageID)
}

// resolveRecipient finds the addressee. Identities are partitioned by
// role, so when the caller names a role only that partition is checked;
// otherwise each partition is tried in turn.
func (uc *MessageUC) resolveRecipient(ctx context.Context, id string, role models.Role) (*models.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("invalid recipient id: %w", err)
	}

	roles := []models.Role{models.RoleFarmer, models.RoleSupplier, models.RoleAdmin}
	if role != "" {
		if !role.Valid() {
			return nil, ErrRecipientNotFound
		}
		roles = []models.Role{role}
	}

	for _, r := range roles {
		user, err := uc.userRepo.GetByID(ctx, r, id)
		if err != nil {
			return nil, err
		}
		if user != nil {
			return user, nil
		}
	}
	return nil, ErrRecipientNotFound
}

func threadHasParticipant(threadID, userID string) bool {
	for _, part := range strings.Split(threadID, ":") {
		if part == userID {
			return true
		}
	}
	return false
}
