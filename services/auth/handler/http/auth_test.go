package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
	"github.com/farmchain/backend/services/auth"
	"github.com/farmchain/backend/services/auth/mocks"
)

func newHandlerTest(t *testing.T) (*AuthHandler, *mocks.MockAuthUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(uc), uc
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = utils.NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSendOTP_Success(t *testing.T) {
	h, uc := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/send-otp", `{"phone":"9876543210"}`)

	uc.EXPECT().SendOTP(gomock.Any(), "9876543210").
		Return(&models.SendOTPResult{EchoOTP: "482913"}, nil)

	require.NoError(t, h.SendOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "482913", data["otp"])
}

func TestSendOTP_RateLimited(t *testing.T) {
	h, uc := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/send-otp", `{"phone":"9876543210"}`)

	uc.EXPECT().SendOTP(gomock.Any(), "9876543210").
		Return(&models.SendOTPResult{RateLimited: true, TimeLeft: 37}, nil)

	require.NoError(t, h.SendOTP(c))

	// The legacy throttle contract: HTTP 200 with a failure flag
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "RATE_LIMITED", body["code"])
	assert.Equal(t, float64(37), body["timeLeft"])
}

func TestSendOTP_BadPayload(t *testing.T) {
	h, _ := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/send-otp", `{"phone":"abc"}`)

	require.NoError(t, h.SendOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendOTP_MissingPhone(t *testing.T) {
	h, _ := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/send-otp", `{}`)

	require.NoError(t, h.SendOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTP_Success(t *testing.T) {
	h, uc := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/verify",
		`{"phone":"9876543210","otp":"482913","role":"supplier"}`)

	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleSupplier, Phone: "9876543210"}
	uc.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).
		Return(
			&models.AuthResponse{Token: "signed.jwt.token", User: user, ExpiresAt: 1790000000},
			&models.OTPVerifyResult{Status: models.OTPValid},
			nil,
		)

	require.NoError(t, h.VerifyOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "signed.jwt.token", data["token"])
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	h, uc := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/verify",
		`{"phone":"9876543210","otp":"000000"}`)

	uc.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).
		Return(nil, &models.OTPVerifyResult{Status: models.OTPInvalid, AttemptsLeft: 4}, nil)

	// A wrong code is a 400 with the legacy failure envelope, not a 401
	require.NoError(t, h.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Incorrect OTP", body["message"])
	assert.Equal(t, float64(4), body["attemptsLeft"])
}

func TestVerifyOTP_Expired(t *testing.T) {
	h, uc := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/verify",
		`{"phone":"9876543210","otp":"482913"}`)

	uc.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).
		Return(nil, &models.OTPVerifyResult{Status: models.OTPExpired}, nil)

	require.NoError(t, h.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "expired")
	assert.NotContains(t, body, "attemptsLeft")
}

func TestVerifyOTP_Exhausted(t *testing.T) {
	h, uc := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/verify",
		`{"phone":"9876543210","otp":"482913"}`)

	uc.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).
		Return(nil, &models.OTPVerifyResult{Status: models.OTPExhausted}, nil)

	require.NoError(t, h.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "Too many incorrect attempts")
}

func TestVerifyOTP_NotFound(t *testing.T) {
	h, uc := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/verify",
		`{"phone":"9876543210","otp":"482913"}`)

	uc.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).
		Return(nil, &models.OTPVerifyResult{Status: models.OTPNotFound}, nil)

	require.NoError(t, h.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTP_InvalidRolePayload(t *testing.T) {
	h, _ := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/verify",
		`{"phone":"9876543210","otp":"482913","role":"superuser"}`)

	require.NoError(t, h.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminLogin_Success(t *testing.T) {
	h, uc := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/admin/login",
		`{"email":"admin@farmchain.in","password":"correct-horse-battery"}`)

	admin := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	uc.EXPECT().AdminLogin(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{Token: "signed.jwt.token", User: admin}, nil)

	require.NoError(t, h.AdminLogin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminLogin_BadCredentials(t *testing.T) {
	h, uc := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/admin/login",
		`{"email":"admin@farmchain.in","password":"wrong-password"}`)

	uc.EXPECT().AdminLogin(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrInvalidCredentials)

	require.NoError(t, h.AdminLogin(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLogin_ShortPassword(t *testing.T) {
	h, _ := newHandlerTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/admin/login",
		`{"email":"admin@farmchain.in","password":"short"}`)

	require.NoError(t, h.AdminLogin(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
