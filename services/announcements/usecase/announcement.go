package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/constants"
	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/models"
)

// ErrAnnouncementNotFound is returned when the id resolves to nothing
var ErrAnnouncementNotFound = errors.New("announcement not found")

const audienceAll = "all"

// ListForRole returns the notices visible to a signed-in user. Notices
// addressed to "all" are always included alongside role-specific ones.
func (uc *AnnouncementUC) ListForRole(ctx context.Context, role models.Role) ([]models.Announcement, error) {
	audiences := []string{audienceAll, string(role)}
	return uc.repo.ListActive(ctx, audiences)
}

// Create publishes a new platform notice
func (uc *AnnouncementUC) Create(ctx context.Context, adminID string, req *models.CreateAnnouncementRequest) (*models.Announcement, error) {
	adminOID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return nil, fmt.Errorf("invalid admin id: %w", err)
	}

	audience := req.Audience
	if audience == "" {
		audience = audienceAll
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	a := &models.Announcement{
		Title:     req.Title,
		Body:      req.Body,
		Audience:  audience,
		Priority:  req.Priority,
		IsActive:  active,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		CreatedBy: adminOID,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	uc.publish(constants.TopicAnnouncementCreated, map[string]interface{}{
		"announcement_id": a.ID.Hex(),
		"audience":        a.Audience,
		"title":           a.Title,
	})
	return a, nil
}

// Update edits an existing notice
func (uc *AnnouncementUC) Update(ctx context.Context, id string, req *models.UpdateAnnouncementRequest) (*models.Announcement, error) {
	a, err := uc.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAnnouncementNotFound
	}
	return a, nil
}

// Delete removes a notice
func (uc *AnnouncementUC) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *AnnouncementUC) publish(topic string, payload interface{}) {
	if err := uc.eventsGW.Publish(topic, payload); err != nil {
		logger.Warn("failed to publish event",
			logger.String("topic", topic),
			logger.Err(err))
	}
}
