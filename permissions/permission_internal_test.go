package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionData_Build(t *testing.T) {
	t.Run("duplicate route", func(t *testing.T) {
		data := PermissionData{Endpoints: []Permission{
			{Path: "/v1/bookings/", Method: "POST"},
			{Path: "/v1/bookings/", Method: "post"},
		}}

		assert.ErrorContains(t, data.build(), "duplicate permission entry POST /v1/bookings/")
	})

	t.Run("unknown role", func(t *testing.T) {
		data := PermissionData{Endpoints: []Permission{
			{Path: "/v1/channels/logs", Method: "GET", Permissions: []string{"manager"}},
		}}

		assert.ErrorContains(t, data.build(), `unknown role "manager"`)
	})

	t.Run("method lookup ignores case", func(t *testing.T) {
		data := PermissionData{Endpoints: []Permission{
			{Path: "/v1/loyalty/redeem", Method: "post"},
		}}
		require.NoError(t, data.build())

		assert.Equal(t, "/v1/loyalty/redeem", data.FindPermissions("/v1/loyalty/redeem", "POST").Path)
	})
}
