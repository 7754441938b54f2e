package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestEffectivePermissionsPrefersRole(t *testing.T) {
	user := User{
		Permissions: datatypes.JSONSlice[string]{"legacy:perm"},
		Role: &Role{
			Name: "hr",
			Permissions: []Permission{
				{Name: "user:view"},
				{Name: "user:create"},
			},
		},
	}

	require.Equal(t, []string{"user:view", "user:create"}, user.EffectivePermissions())
}

func TestEffectivePermissionsFallsBackToLegacyList(t *testing.T) {
	user := User{Permissions: datatypes.JSONSlice[string]{"dashboard:view"}}
	require.Equal(t, []string{"dashboard:view"}, user.EffectivePermissions())
}

func TestRoleNameFallback(t *testing.T) {
	require.Equal(t, "employee", (&User{}).RoleName())
	require.Equal(t, "employee", (&User{Role: &Role{}}).RoleName())
	require.Equal(t, "admin", (&User{Role: &Role{Name: "admin"}}).RoleName())
}
