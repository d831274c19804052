package config

import (
	"os"
	"strings"
)

// StrictValidation reports whether optional hardening is enabled: commission
// bounded to [0,1] and self-messages rejected. The default (permissive)
// matches the historical behavior of the platform.
func StrictValidation() bool {
	return strings.EqualFold(os.Getenv("STRICT_VALIDATION"), "true")
}

// Port returns the HTTP listen port
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
