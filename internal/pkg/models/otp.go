package models

// SendOTPRequest is the payload for POST /auth/send-otp
type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required,numeric,min=10,max=15"`
}

// VerifyOTPRequest is the payload for POST /auth/verify.
// Role defaults to farmer when omitted.
type VerifyOTPRequest struct {
	Phone   string   `json:"phone" validate:"required,numeric,min=10,max=15"`
	OTP     string   `json:"otp" validate:"required,numeric,min=4,max=6"`
	Name    string   `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Email   string   `json:"email,omitempty" validate:"omitempty,email"`
	Role    Role     `json:"role,omitempty" validate:"omitempty,oneof=farmer supplier admin"`
	Company *Company `json:"company,omitempty"`
}

// AdminLoginRequest is the payload for POST /auth/admin/login
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	User      *User  `json:"user"`
	ExpiresAt int64  `json:"expiresAt"`
}

// OTPStatus tags the outcome of an OTP verification attempt.
// These are normal results, not errors: the store never fails a
// request because a code is absent or wrong.
type OTPStatus string

const (
	OTPValid     OTPStatus = "valid"
	OTPInvalid   OTPStatus = "invalid"
	OTPNotFound  OTPStatus = "not_found"
	OTPExpired   OTPStatus = "expired"
	OTPExhausted OTPStatus = "attempts_exhausted"
)

// OTPVerifyResult is the structured outcome of a verification attempt
type OTPVerifyResult struct {
	Status       OTPStatus
	AttemptsLeft int
}

// Valid reports whether the submitted code matched.
func (r OTPVerifyResult) Valid() bool { return r.Status == OTPValid }

// RateLimitResult is the structured outcome of a rate-limit check
type RateLimitResult struct {
	Limited  bool
	TimeLeft int // seconds until the window opens again
}

// SendOTPResult is the structured outcome of an OTP send request.
// EchoOTP is populated only in non-production environments with the
// echo flag enabled, so local clients can complete the flow without
// a real SMS provider.
type SendOTPResult struct {
	RateLimited bool
	TimeLeft    int
	EchoOTP     string
}
