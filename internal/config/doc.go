// Package config provides configuration loading, merging, and validation
// facilities for the service.
//
// Configuration is assembled from multiple sources; for every field the first
// source that provides a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Remaining zero fields receive defaults, after which the result is
// validated. The entry point is [GetStructuredConfig].
package config
