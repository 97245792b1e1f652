package middleware

import (
	"testing"

	"github.com/almursalaat/admin-api/model"
)

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		role    string
		allowed []string
		want    bool
	}{
		{model.RoleAdmin, AdminRoles, true},
		{model.RoleSupremeAdmin, AdminRoles, true},
		{model.RoleTeacher, AdminRoles, false},
		{model.RoleSupremeAdmin, SupremeOnly, true},
		{model.RoleAdmin, SupremeOnly, false},
		{model.RoleTeacher, TeacherOnly, true},
		{model.RoleAdmin, TeacherOnly, false},
		{model.RoleAdmin, AnyRole, true},
		{model.RoleSupremeAdmin, AnyRole, true},
		{model.RoleTeacher, AnyRole, true},
		{"", AnyRole, false},
		{"superuser", AdminRoles, false},
	}

	for _, tt := range tests {
		if got := RoleAllowed(tt.role, tt.allowed); got != tt.want {
			t.Errorf("RoleAllowed(%q, %v) = %v, want %v", tt.role, tt.allowed, got, tt.want)
		}
	}
}
