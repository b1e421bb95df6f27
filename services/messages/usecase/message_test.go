package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/messages/mocks"
	usersmocks "github.com/farmchain/backend/services/users/mocks"
)

func newMessageTestUC(t *testing.T) (*MessageUC, *mocks.MockMessageRepo, *usersmocks.MockUserRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepo(ctrl)
	userRepo := usersmocks.NewMockUserRepo(ctrl)
	return NewMessageUC(repo, userRepo), repo, userRepo
}

func TestThreadID_OrderIndependent(t *testing.T) {
	a := primitive.NewObjectID().Hex()
	b := primitive.NewObjectID().Hex()

	assert.Equal(t, ThreadID(a, b), ThreadID(b, a))
	assert.Contains(t, ThreadID(a, b), a)
	assert.Contains(t, ThreadID(a, b), b)
}

func TestSend_ResolvesRecipientByRole(t *testing.T) {
	uc, repo, userRepo := newMessageTestUC(t)
	ctx := context.Background()

	sender := &models.User{ID: primitive.NewObjectID(), Role: models.RoleFarmer}
	recipient := &models.User{ID: primitive.NewObjectID(), Role: models.RoleSupplier}

	userRepo.EXPECT().GetByID(ctx, models.RoleSupplier, recipient.ID.Hex()).Return(recipient, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Message) error {
			assert.Equal(t, ThreadID(sender.ID.Hex(), recipient.ID.Hex()), m.ThreadID)
			assert.Equal(t, models.RoleFarmer, m.SenderRole)
			assert.Equal(t, models.RoleSupplier, m.RecipientRole)
			m.ID = primitive.NewObjectID()
			return nil
		})

	m, err := uc.Send(ctx, sender, &models.CreateMessageRequest{
		RecipientID:   recipient.ID.Hex(),
		RecipientRole: models.RoleSupplier,
		Body:          "Is the drip kit still in stock?",
	})
	require.NoError(t, err)
	assert.False(t, m.ID.IsZero())
}

func TestSend_SearchesPartitionsWhenRoleOmitted(t *testing.T) {
	uc, repo, userRepo := newMessageTestUC(t)
	ctx := context.Background()

	sender := &models.User{ID: primitive.NewObjectID(), Role: models.RoleSupplier}
	recipient := &models.User{ID: primitive.NewObjectID(), Role: models.RoleSupplier}

	// farmer partition misses, supplier partition hits
	userRepo.EXPECT().GetByID(ctx, models.RoleFarmer, recipient.ID.Hex()).Return(nil, nil)
	userRepo.EXPECT().GetByID(ctx, models.RoleSupplier, recipient.ID.Hex()).Return(recipient, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	_, err := uc.Send(ctx, sender, &models.CreateMessageRequest{
		RecipientID: recipient.ID.Hex(),
		Body:        "Bulk pricing?",
	})
	require.NoError(t, err)
}

func TestSend_RecipientNotFound(t *testing.T) {
	uc, _, userRepo := newMessageTestUC(t)
	ctx := context.Background()

	sender := &models.User{ID: primitive.NewObjectID(), Role: models.RoleFarmer}
	recipientID := primitive.NewObjectID().Hex()

	userRepo.EXPECT().GetByID(ctx, models.RoleFarmer, recipientID).Return(nil, nil)
	userRepo.EXPECT().GetByID(ctx, models.RoleSupplier, recipientID).Return(nil, nil)
	userRepo.EXPECT().GetByID(ctx, models.RoleAdmin, recipientID).Return(nil, nil)

	_, err := uc.Send(ctx, sender, &models.CreateMessageRequest{
		RecipientID: recipientID,
		Body:        "hello",
	})
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestListThread_RejectsOutsider(t *testing.T) {
	uc, _, _ := newMessageTestUC(t)
	ctx := context.Background()

	a := primitive.NewObjectID().Hex()
	b := primitive.NewObjectID().Hex()
	outsider := primitive.NewObjectID().Hex()

	_, err := uc.ListThread(ctx, outsider, ThreadID(a, b))
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestListThread_AllowsParticipant(t *testing.T) {
	uc, repo, _ := newMessageTestUC(t)
	ctx := context.Background()

	a := primitive.NewObjectID().Hex()
	b := primitive.NewObjectID().Hex()
	threadID := ThreadID(a, b)

	repo.EXPECT().ListByThread(ctx, threadID).Return([]models.Message{{Body: "hi"}}, nil)

	items, err := uc.ListThread(ctx, a, threadID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMarkRead_OnlyRecipient(t *testing.T) {
	uc, repo, _ := newMessageTestUC(t)
	ctx := context.Background()

	sender := primitive.NewObjectID()
	recipient := primitive.NewObjectID()
	msg := &models.Message{
		ID:          primitive.NewObjectID(),
		SenderID:    sender,
		RecipientID: recipient,
	}

	repo.EXPECT().GetByID(ctx, msg.ID.Hex()).Return(msg, nil)

	_, err := uc.MarkRead(ctx, sender.Hex(), msg.ID.Hex())
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestMarkRead_Success(t *testing.T) {
	uc, repo, _ := newMessageTestUC(t)
	ctx := context.Background()

	recipient := primitive.NewObjectID()
	msg := &models.Message{
		ID:          primitive.NewObjectID(),
		SenderID:    primitive.NewObjectID(),
		RecipientID: recipient,
	}

	repo.EXPECT().GetByID(ctx, msg.ID.Hex()).Return(msg, nil)
	repo.EXPECT().MarkRead(ctx, msg.ID.Hex()).Return(msg, nil)

	_, err := uc.MarkRead(ctx, recipient.Hex(), msg.ID.Hex())
	require.NoError(t, err)
}

func TestMarkRead_NotFound(t *testing.T) {
	uc, repo, _ := newMessageTestUC(t)
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	repo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	_, err := uc.MarkRead(ctx, primitive.NewObjectID().Hex(), id)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
