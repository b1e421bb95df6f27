package announcements

import (
	"context"

	"github.com/farmchain/backend/internal/pkg/models"
)

// AnnouncementUC is the platform notice usecase interface
type AnnouncementUC interface {
	ListForRole(ctx context.Context, role models.Role) ([]models.Announcement, error)
	Create(ctx context.Context, adminID string, req *models.CreateAnnouncementRequest) (*models.Announcement, error)
	Update(ctx context.Context, id string, req *models.UpdateAnnouncementRequest) (*models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/farmchain/backend/services/announcements AnnouncementRepo

// AnnouncementRepo persists announcements in the admin partition
type AnnouncementRepo interface {
	ListActive(ctx context.Context, audiences []string) ([]models.Announcement, error)
	Create(ctx context.Context, a *models.Announcement) error
	Update(ctx context.Context, id string, req *models.UpdateAnnouncementRequest) (*models.Announcement, error)
	Delete(ctx context.Context, id string) error
}
