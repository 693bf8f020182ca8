// Package config provides configuration structures and utilities for shipreport.
// It defines the options shared by the CLI commands: where shipments come
// from, which report formats to render, and where output and history go.
package config
