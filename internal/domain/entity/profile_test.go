package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProfile_Public_HidesPrivateFields(t *testing.T) {
	profile := &Profile{
		ID:           uuid.New(),
		Name:         "Robin",
		ExactAddress: "123 Orchard Rd",
		Phone:        "509-555-0100",
		Email:        "robin@example.com",
		ShowPhone:    false,
		ShowEmail:    true,
	}

	pub := profile.Public()

	assert.Empty(t, pub.Phone)
	assert.Equal(t, "robin@example.com", pub.Email)
	assert.NotContains(t, pub.Name+pub.City+pub.County+pub.Bio, "123 Orchard Rd")
}

func TestNewProfileFromMetadata(t *testing.T) {
	userID := uuid.New()

	profile := NewProfileFromMetadata(userID, "sam@example.com", SignupMetadata{
		Name:   "Sam",
		Role:   RoleProductionFarmer,
		County: "yakima",
	})

	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, RoleProductionFarmer, profile.Role)
	assert.True(t, profile.ShowInMarketplace)
	assert.True(t, profile.IncludeInSearch)
	assert.False(t, profile.ShowPhone)
}
