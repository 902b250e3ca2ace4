package permissions_test

import (
	"net/http"
	"rimbest/permissions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{name: "public search", path: "/v1/flights/", method: http.MethodGet, wantSkip: true},
		{name: "public flight", path: "/v1/flights/{id}", method: http.MethodGet, wantSkip: true},
		{name: "sign in", path: "/v1/auth/signin", method: http.MethodPost, wantSkip: true},
		{name: "bookings need a session", path: "/v1/bookings/", method: http.MethodGet},
		{name: "admin roles", path: "/v1/admin/stats", method: http.MethodGet, wantRoles: []string{"ADMIN", "ROLE_ADMIN"}},
		{name: "method matters", path: "/v1/auth/signin", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, got.Skip)
			assert.Equal(t, tt.wantRoles, got.Permissions)
		})
	}
}
