// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// It covers the HTTP server and the directory of GPX track files served from
// it.
package config
