package usecase

import (
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/services/auth"
)

// AuthUC implements the authentication usecase
type AuthUC struct {
	cache    auth.OTPCache
	userRepo auth.UserRepo
	smsGW    auth.SMSGW
	eventsGW auth.EventsGW
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	cache auth.OTPCache,
	userRepo auth.UserRepo,
	smsGW auth.SMSGW,
	eventsGW auth.EventsGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		cache:    cache,
		userRepo: userRepo,
		smsGW:    smsGW,
		eventsGW: eventsGW,
		cfg:      cfg,
	}
}
