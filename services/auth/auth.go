package auth

import (
	"context"
	"errors"

	"github.com/farmchain/backend/internal/pkg/models"
)

var (
	// ErrInvalidPhone marks a phone number that failed validation
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidCredentials marks a failed admin login. The message is
	// deliberately identical for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRole marks a role outside the closed enumeration
	ErrInvalidRole = errors.New("invalid role")
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/farmchain/backend/services/auth AuthUC
//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks github.com/farmchain/backend/services/auth OTPCache
//go:generate mockgen -destination=mocks/mock_repo.go -package=mocks github.com/farmchain/backend/services/auth UserRepo
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/farmchain/backend/services/auth SMSGW,EventsGW

// AuthUC is the authentication usecase interface
type AuthUC interface {
	SendOTP(ctx context.Context, phone string) (*models.SendOTPResult, error)
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, *models.OTPVerifyResult, error)
	AdminLogin(ctx context.Context, req *models.AdminLoginRequest) (*models.AuthResponse, error)
}

// OTPCache stores issued codes and issuance rate windows, keyed by
// normalized phone. Backed by an in-process map by default and by
// Redis when configured; both carry identical semantics, including
// single-use codes and the bounded attempt counter.
type OTPCache interface {
	// ReserveSend records one issuance request against the phone's
	// rate window and reports whether it was admitted.
	ReserveSend(ctx context.Context, phone string) (models.RateLimitResult, error)

	// Issue stores a fresh code for the phone, replacing any previous
	// one and resetting its attempt counter.
	Issue(ctx context.Context, phone, code string) error

	// Verify checks a submitted code. Wrong submissions burn an
	// attempt; a matching one consumes the code.
	Verify(ctx context.Context, phone, code string) (models.OTPVerifyResult, error)
}

// UserRepo is the slice of the user repository the auth flow needs.
// GetByPhone returns (nil, nil) when no user exists in the partition.
type UserRepo interface {
	GetByPhone(ctx context.Context, role models.Role, phone string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	RecordLogin(ctx context.Context, role models.Role, id string, hints models.ProfileHints) (*models.User, error)
	EnsureAdmin(ctx context.Context, email string) (*models.User, error)
}

// SMSGW delivers one-time codes to phones
type SMSGW interface {
	Send(ctx context.Context, phone, code string) error
}

// EventsGW publishes domain events to the message broker
type EventsGW interface {
	Publish(topic string, payload interface{}) error
}
