// Package permissions holds the route access table: which chi route patterns are public and which
// roles may call the rest. Routes absent from the table need an authenticated caller of any role.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{"superadmin", "admin", "user"}

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]int
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index != nil {
		if idx, ok := r.index[routeKey(method, path)]; ok {
			return r.Endpoints[idx]
		}

		return Permission{}
	}

	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && strings.EqualFold(rp.Method, method)
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// build indexes the endpoints and rejects duplicate routes or unknown role names.
func (r *PermissionData) build() error {
	r.index = make(map[string]int, len(r.Endpoints))

	for idx, endpoint := range r.Endpoints {
		key := routeKey(endpoint.Method, endpoint.Path)
		if _, ok := r.index[key]; ok {
			return fmt.Errorf("duplicate permission entry %s", key)
		}

		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return fmt.Errorf("unknown role %q on %s", role, key)
			}
		}

		r.index[key] = idx
	}

	return nil
}

func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	if err := permissions.build(); err != nil {
		log.Err(err).Msg("Invalid embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
