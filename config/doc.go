// Package config loads and validates the YAML configuration for the
// workpool demo binary: worker count, logging, and the optional metrics
// server. Values not present in the file keep their defaults.
package config
