// Package config handles configuration loading, parsing, and validation
// from various sources (a .env file, environment variables, an optional
// config.yaml). It provides type-safe access to the settings needed by the
// HTTP server and the outbound API clients while keeping configuration
// details separate from request handling.
package config
