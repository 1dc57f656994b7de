// Package config provides environment-driven configuration for the
// boardbridge service.
package config
