package utils

import (
	"testing"

	"NeoVax/models"

	"github.com/stretchr/testify/assert"
)

func validUser() models.User {
	return models.User{
		FullName: "Nurse Joy",
		Username: "njoy",
		Email:    "njoy@clinic.local",
		Password: "Passw0rd!",
		Role:     models.RoleStaff,
	}
}

func TestValidateUserDataAccepts(t *testing.T) {
	assert.NoError(t, ValidateUserData(validUser()))
}

func TestValidateUserDataPasswordRules(t *testing.T) {
	u := validUser()
	u.Password = "Pa0!"
	assert.Error(t, ValidateUserData(u), "too short")

	u.Password = "password1!"
	assert.Error(t, ValidateUserData(u), "no uppercase")

	u.Password = "PASSWORD1!"
	assert.Error(t, ValidateUserData(u), "no lowercase")

	u.Password = "Password!!"
	assert.Error(t, ValidateUserData(u), "no digit")

	u.Password = "Password11"
	assert.Error(t, ValidateUserData(u), "no special character")
}

func TestValidateUserDataRole(t *testing.T) {
	u := validUser()
	u.Role = "Doctor"
	assert.Error(t, ValidateUserData(u))

	u.Role = models.RoleAdmin
	assert.NoError(t, ValidateUserData(u))
}

func TestValidateUserDataEmail(t *testing.T) {
	u := validUser()
	u.Email = "not-an-email"
	assert.Error(t, ValidateUserData(u))

	// Format check only: internal LAN domains with no public DNS must pass.
	u.Email = "njoy@clinic.local"
	assert.NoError(t, ValidateUserData(u))

	u.Email = "njoy@clinic.example"
	assert.NoError(t, ValidateUserData(u))
}

func TestValidateUserDataUsernameLength(t *testing.T) {
	u := validUser()
	u.Username = "ab"
	assert.Error(t, ValidateUserData(u))
}

func TestValidatePasswordReset(t *testing.T) {
	assert.NoError(t, ValidatePasswordReset("123456", "NewPassw0rd!"))
	assert.Error(t, ValidatePasswordReset("", "NewPassw0rd!"))
	assert.Error(t, ValidatePasswordReset("123456", "weak"))
}
