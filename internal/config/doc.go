// Package config defines the application configuration and its loading
// logic. Configuration comes from defaults, an optional YAML file and
// CARDDOWN_-prefixed environment variables, validated once at startup.
package config
