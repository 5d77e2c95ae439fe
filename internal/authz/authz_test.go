package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ratheesh-12/HostelMS/internal/model"
)

func TestAllowed(t *testing.T) {
	p := New()

	testCases := []struct {
		name     string
		role     model.Role
		required model.Role
		want     bool
	}{
		{"no requirement admits anyone", model.RoleStudent, "", true},
		{"matching role", model.RoleAdmin, model.RoleAdmin, true},
		{"admin is not staff", model.RoleAdmin, model.RoleStaff, false},
		{"student is not admin", model.RoleStudent, model.RoleAdmin, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user := model.User{Role: tc.role}
			assert.Equal(t, tc.want, p.Allowed(user, tc.required))
		})
	}
}

func TestAllowedAny(t *testing.T) {
	p := New()

	staff := model.User{Role: model.RoleStaff}
	assert.True(t, p.AllowedAny(staff, model.RoleAdmin, model.RoleStaff))
	assert.False(t, p.AllowedAny(staff, model.RoleAdmin))
	assert.False(t, p.AllowedAny(staff))
}
