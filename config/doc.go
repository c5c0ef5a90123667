// Package config resolves event.Parameters from defaults, an optional
// YAML config file, environment variables, and command-line flags, in
// that increasing order of precedence -- viper's standard layering.
package config
