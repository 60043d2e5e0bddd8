// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first non-zero value per field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. It is called exactly once
// at startup; the resulting config is passed down explicitly and nothing
// re-reads the environment afterwards.
package config
