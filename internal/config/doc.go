// Package config provides configuration loading, merging, and validation
// facilities for the storefront auth service.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. .env file, loaded into the environment without overriding it
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Environment-dependent defaults (token TTL, bcrypt cost, cookie security)
// are applied after merging. The entry point is [GetStructuredConfig].
package config
