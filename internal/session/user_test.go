package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		wire string
		want Role
	}{
		{"worker", RoleWorker},
		{"care_home_admin", RoleCareHomeAdmin},
		{"care_home", RoleCareHomeAdmin}, // registration-time value
		{"care_home_staff", RoleCareHomeStaff},
		{"", RoleUnknown},
		{"admin", RoleUnknown},
		{"WORKER", RoleUnknown}, // wire values are lowercase, no folding
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRole(tt.wire), "wire %q", tt.wire)
	}
}

func TestRole_IsCareHome(t *testing.T) {
	assert.True(t, RoleCareHomeAdmin.IsCareHome())
	assert.True(t, RoleCareHomeStaff.IsCareHome())
	assert.False(t, RoleWorker.IsCareHome())
	assert.False(t, RoleUnknown.IsCareHome())
}
