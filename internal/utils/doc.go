// Package utils bundles shared infrastructure for the workfeed CLI: the
// Viper-backed configuration loader and the zap logger factory consumed by
// the command wiring in cmd/cli.
package utils
