package handlers

import (
	"strings"
)

var disallowedReturnTo = map[string]struct{}{
	"/admin-login": {},
	"/api/auth":    {},
}

// sanitizeReturnTo accepts only local admin paths as a post-login target.
func sanitizeReturnTo(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	if strings.ContainsAny(path, "\r\n\\") {
		return "", false
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "//") {
		return "", false
	}

	if !strings.HasPrefix(path, "/") {
		return "", false
	}

	base := path
	if idx := strings.IndexAny(path, "?#"); idx != -1 {
		base = path[:idx]
	}

	if _, blocked := disallowedReturnTo[base]; blocked {
		return "", false
	}

	if base != "/admin" && !strings.HasPrefix(base, "/admin/") {
		return "", false
	}

	return path, true
}
