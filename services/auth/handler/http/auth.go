package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
	"github.com/farmchain/backend/services/auth"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// SendOTP handles POST /auth/send-otp. A throttled request is not an
// HTTP error: legacy clients expect a 200 with a failure flag and the
// seconds left in the body.
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Phone number must be 10-15 digits")
	}

	result, err := h.authUC.SendOTP(c.Request().Context(), req.Phone)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPhone) {
			return utils.BadRequestResponse(c, "Phone number must be 10-15 digits")
		}
		logger.Error("Failed to send OTP", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to send OTP")
	}

	if result.RateLimited {
		return c.JSON(http.StatusOK, utils.RateLimitedResponse{
			Success:  false,
			Message:  "Too many OTP requests, please try again later",
			Code:     "RATE_LIMITED",
			TimeLeft: result.TimeLeft,
		})
	}

	data := map[string]interface{}{}
	if result.EchoOTP != "" {
		data["otp"] = result.EchoOTP
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", data)
}

// VerifyOTP handles POST /auth/verify
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid phone or OTP format")
	}

	resp, result, err := h.authUC.VerifyOTP(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPhone) || errors.Is(err, auth.ErrInvalidRole) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to verify OTP", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to verify OTP")
	}

	if !result.Valid() {
		return h.rejectVerification(c, result)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authentication successful", resp)
}

// rejectVerification maps each non-valid OTP status to its client
// message. A failed verification is a 400, not a 401: no credential
// was presented, the submitted code was simply wrong.
func (h *AuthHandler) rejectVerification(c echo.Context, result *models.OTPVerifyResult) error {
	resp := utils.OTPRejectedResponse{}
	switch result.Status {
	case models.OTPInvalid:
		resp.Message = "Incorrect OTP"
		attemptsLeft := result.AttemptsLeft
		resp.AttemptsLeft = &attemptsLeft
	case models.OTPExpired:
		resp.Message = "OTP has expired, request a new one"
	case models.OTPExhausted:
		resp.Message = "Too many incorrect attempts, request a new OTP"
	default:
		resp.Message = "No OTP pending for this phone, request one first"
	}
	return c.JSON(http.StatusBadRequest, resp)
}

// AdminLogin handles POST /auth/admin/login
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.AdminLogin(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.Error("Admin login failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Login failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
