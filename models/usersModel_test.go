package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleStaff))
	assert.False(t, IsValidRole("Doctor"))
	assert.False(t, IsValidRole("admin"))
	assert.False(t, IsValidRole(""))
}
