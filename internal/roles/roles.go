package roles

import (
	"encoding/json"
	"strings"
)

// Application roles stored on the profile row and mirrored into session
// token claims.
const (
	Resident   = "resident"
	Coach      = "coach"
	ServicePro = "service_pro"
	Owner      = "owner"
)

// Normalize maps the historical "service-pro" spelling to "service_pro".
// Stored data carries both forms; they are equivalent. No other role pair
// is normalized.
func Normalize(role string) string {
	if role == "service-pro" {
		return ServicePro
	}
	return role
}

// IsCoach reports whether the role grants coach access.
func IsCoach(role string) bool {
	return role == Coach
}

// IsServicePro reports whether the role grants service-pro access, under
// either spelling.
func IsServicePro(role string) bool {
	return Normalize(role) == ServicePro
}

// FromMetadata extracts a role field from an auth-provider metadata blob.
// An empty or unparseable blob is a miss, not an error for the caller to
// act on; the resolver falls through to the next source.
func FromMetadata(metadata string) (string, error) {
	if strings.TrimSpace(metadata) == "" {
		return "", nil
	}

	var meta struct {
		Role string `json:"role"`
	}
	if err := json.Unmarshal([]byte(metadata), &meta); err != nil {
		return "", err
	}
	return meta.Role, nil
}
