package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/constants"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/announcements/mocks"
	authmocks "github.com/farmchain/backend/services/auth/mocks"
)

func newAnnouncementTestUC(t *testing.T) (*AnnouncementUC, *mocks.MockAnnouncementRepo, *authmocks.MockEventsGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnnouncementRepo(ctrl)
	events := authmocks.NewMockEventsGW(ctrl)
	return NewAnnouncementUC(repo, events), repo, events
}

func TestListForRole_IncludesAllAudience(t *testing.T) {
	uc, repo, _ := newAnnouncementTestUC(t)
	ctx := context.Background()

	repo.EXPECT().ListActive(ctx, []string{"all", "farmer"}).
		Return([]models.Announcement{{Title: "Monsoon advisory"}}, nil)

	items, err := uc.ListForRole(ctx, models.RoleFarmer)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Monsoon advisory", items[0].Title)
}

func TestCreate_DefaultsAndPublishes(t *testing.T) {
	uc, repo, events := newAnnouncementTestUC(t)
	ctx := context.Background()
	adminID := primitive.NewObjectID()

	repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Announcement) error {
			assert.Equal(t, "all", a.Audience)
			assert.True(t, a.IsActive)
			assert.Equal(t, adminID, a.CreatedBy)
			a.ID = primitive.NewObjectID()
			return nil
		})
	events.EXPECT().Publish(constants.TopicAnnouncementCreated, gomock.Any()).Return(nil)

	a, err := uc.Create(ctx, adminID.Hex(), &models.CreateAnnouncementRequest{
		Title: "Subsidy window open",
		Body:  "Applications accepted until month end.",
	})
	require.NoError(t, err)
	assert.False(t, a.ID.IsZero())
}

func TestCreate_EventFailureDoesNotFail(t *testing.T) {
	uc, repo, events := newAnnouncementTestUC(t)
	ctx := context.Background()
	adminID := primitive.NewObjectID()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	events.EXPECT().Publish(constants.TopicAnnouncementCreated, gomock.Any()).
		Return(errors.New("nsqd unreachable"))

	_, err := uc.Create(ctx, adminID.Hex(), &models.CreateAnnouncementRequest{
		Title: "Maintenance tonight",
		Body:  "Short downtime at 02:00 IST.",
	})
	require.NoError(t, err)
}

func TestUpdate_NotFound(t *testing.T) {
	uc, repo, _ := newAnnouncementTestUC(t)
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	repo.EXPECT().Update(ctx, id, gomock.Any()).Return(nil, nil)

	_, err := uc.Update(ctx, id, &models.UpdateAnnouncementRequest{})
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)
}
