package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmchain/backend/internal/pkg/models"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60, // minutes
		Issuer:     "farmchain-test",
	}
}

func testUser(role models.Role) *models.User {
	return &models.User{
		ID:    primitive.NewObjectID(),
		Role:  role,
		Phone: "9876543210",
		Name:  "Test User",
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name string
		role models.Role
	}{
		{name: "Farmer token", role: models.RoleFarmer},
		{name: "Supplier token", role: models.RoleSupplier},
		{name: "Admin token", role: models.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := testUser(tt.role)
			token, expiresAt, err := GenerateToken(user, getTestConfig())

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Greater(t, expiresAt, time.Now().Unix())

			claims, err := ValidateToken(token, getTestConfig().Secret)
			require.NoError(t, err)
			assert.Equal(t, user.ID.Hex(), claims["user_id"])
			assert.Equal(t, string(tt.role), claims["role"])
			assert.Equal(t, user.Phone, claims["phone"])
			assert.Equal(t, "farmchain-test", claims["iss"])
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(testUser(models.RoleFarmer), getTestConfig())
	require.NoError(t, err)

	claims, err := ValidateToken(token, "a-different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()
	cfg.Expiration = -1 // already expired

	token, _, err := GenerateToken(testUser(models.RoleFarmer), cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	// Token signed with "none" must be rejected
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{
		"user_id": primitive.NewObjectID().Hex(),
		"role":    "farmer",
	})
	tokenString, err := token.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, getTestConfig().Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("not.a.token", getTestConfig().Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
