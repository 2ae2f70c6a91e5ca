// Package config provides configuration management for apodex.
//
// Configuration comes from three layers, in increasing precedence:
// documented defaults, an optional .apodex YAML file, and CLI flags.
// API credentials are read from the environment (optionally seeded
// from a .env file) and are validated before any network call so a
// missing key fails fast with a specific error.
package config
