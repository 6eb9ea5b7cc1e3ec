// Path: internal/config/constants.go
package config

import "time"

const (
	DefaultConfigPath   = "config/appsettings.yaml"
	DefaultHost         = "127.0.0.1"
	DefaultPort         = 5000
	DefaultDatabasePath = "data/taskprogress.db"
	DefaultMaxRows      = 1000
)

const (
	// Server configuration defaults
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)
