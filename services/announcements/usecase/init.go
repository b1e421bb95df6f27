package usecase

import (
	"github.com/farmchain/backend/services/announcements"
	"github.com/farmchain/backend/services/auth"
)

// AnnouncementUC implements announcements.AnnouncementUC
type AnnouncementUC struct {
	repo     announcements.AnnouncementRepo
	eventsGW auth.EventsGW
}

// NewAnnouncementUC creates the announcement usecase
func NewAnnouncementUC(repo announcements.AnnouncementRepo, eventsGW auth.EventsGW) *AnnouncementUC {
	return &AnnouncementUC{
		repo:     repo,
		eventsGW: eventsGW,
	}
}
