package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (an empty database connection string).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration: database DSN is required")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (a missing token signing secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration: token sign key is required")
)
