package rbac_test

import (
	"testing"

	"go-hrm/internal/rbac"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforcerPolicy(t *testing.T) {
	e, err := rbac.NewEnforcer()
	require.NoError(t, err)

	cases := []struct {
		name    string
		sub     string
		obj     string
		act     string
		allowed bool
	}{
		{"admin reads users", rbac.RoleAdmin, "/api/v1/users", "GET", true},
		{"admin deletes user", rbac.RoleAdmin, "/api/v1/users/5", "DELETE", true},
		{"user denied users list", rbac.RoleUser, "/api/v1/users", "GET", false},
		{"user denied user by id", rbac.RoleUser, "/api/v1/users/5", "GET", false},
		{"user reads employees", rbac.RoleUser, "/api/v1/employees", "GET", true},
		{"user deletes region", rbac.RoleUser, "/api/v1/regions/3", "DELETE", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := e.Enforce(tc.sub, tc.obj, tc.act)
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
