// internal/config/models.go
// Package config provides configuration loading, validation, and settings records.
package config

import "github.com/anmicius0/taskprogress/internal/settings"

// AuthSettings is bound from the AuthSettings section and guards the API.
type AuthSettings struct {
	// APIToken is the bearer token clients must present
	APIToken string `settings:"required,min=16" pattern:"^[A-Za-z0-9._~-]+$"`
}

// ReportSettings is bound from the ReportSettings section.
type ReportSettings struct {
	// MaxRows caps the number of progress reports returned by one request
	MaxRows int
	// ServerURL is where the progress command reaches the API
	ServerURL string
}

// Constraints declares the ReportSettings rules.
func (ReportSettings) Constraints() []settings.Constraint {
	return []settings.Constraint{
		settings.Required("MaxRows"),
		settings.Required("ServerURL"),
		settings.Pattern("ServerURL", `^https?://[^\s/]+`),
	}
}
