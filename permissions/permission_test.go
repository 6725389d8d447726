package permissions_test

import (
	"net/http"
	"testing"

	"hotelbook/permissions"
	"hotelbook/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name  string
		path  string
		verb  string
		skip  bool
		roles []string
	}{
		{name: "login is public", path: "/v1/auth/login", verb: http.MethodPost, skip: true},
		{name: "search is public", path: "/v1/availability", verb: http.MethodGet, skip: true},
		{name: "webhook is public", path: "/v1/payments/webhook", verb: http.MethodPost, skip: true},
		{name: "guests book", path: "/v1/bookings/", verb: http.MethodPost, roles: []string{}},
		{name: "sync is admin only", path: "/v1/channels/{provider}/sync", verb: http.MethodPost, roles: []string{constant.RoleSuperAdmin, constant.RoleAdmin}},
		{name: "adjust is admin only", path: "/v1/loyalty/users/{id}/adjust", verb: http.MethodPost, roles: []string{constant.RoleSuperAdmin, constant.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.verb)

			assert.Equal(t, tt.path, permission.Path)
			assert.Equal(t, tt.skip, permission.Skip)

			if !tt.skip {
				assert.Equal(t, tt.roles, permission.Permissions)
			}
		})
	}
}

func TestFindPermissions_Unknown(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/v1/unknown", http.MethodGet))
}
