// Package config provides configuration loading, merging, and validation
// facilities for the auth service.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. A configuration that fails
// validation (notably a missing token signing key) is a startup-fatal
// condition; there are no silent fallbacks for secrets.
package config
