// Package config loads, normalizes, and validates ertnotes configuration.
//
// It supplies repository defaults (including the shipped healer roster),
// expands user paths with tilde shortcuts, reads TOML files, and centralizes
// every knob the CLI needs: source and output locations, roster and
// supervisor settings, output file naming, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
