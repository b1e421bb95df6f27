package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farmchain/backend/internal/pkg/models"
)

func TestLoginBackfill_StampsPhoneVerified(t *testing.T) {
	user := &models.User{Role: models.RoleFarmer, Phone: "9876543210"}

	fill := loginBackfill(user, models.ProfileHints{})

	assert.Equal(t, true, fill["phone_verified"])
	assert.True(t, user.PhoneVerified)
}

func TestLoginBackfill_PhonelessAccountStaysUnverified(t *testing.T) {
	// The bootstrap admin has no phone; a login must not mark it verified
	user := &models.User{Role: models.RoleAdmin, Name: "Administrator", Email: "admin@farmchain.in"}

	fill := loginBackfill(user, models.ProfileHints{})

	assert.NotContains(t, fill, "phone_verified")
	assert.False(t, user.PhoneVerified)
}

func TestLoginBackfill_AlreadyVerifiedNotRestamped(t *testing.T) {
	user := &models.User{Role: models.RoleFarmer, Phone: "9876543210", PhoneVerified: true}

	fill := loginBackfill(user, models.ProfileHints{})

	assert.Empty(t, fill)
}

func TestLoginBackfill_HintsFillAbsentFieldsOnly(t *testing.T) {
	user := &models.User{
		Role:          models.RoleSupplier,
		Phone:         "9876543210",
		PhoneVerified: true,
		Name:          "Ravi Traders",
	}
	hints := models.ProfileHints{
		Name:    "Different Name",
		Email:   "ravi@example.com",
		Company: &models.Company{Name: "Ravi Traders Pvt Ltd"},
	}

	fill := loginBackfill(user, hints)

	// The saved name wins over the hint; absent fields are filled
	assert.NotContains(t, fill, "name")
	assert.Equal(t, "Ravi Traders", user.Name)
	assert.Equal(t, "ravi@example.com", fill["email"])
	assert.Equal(t, hints.Company, fill["company"])
}
