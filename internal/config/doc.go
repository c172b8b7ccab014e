// Package config loads, validates, and defaults the sublate TOML
// configuration.
package config
