// Package cli constructs the workfeed command-line interface, wiring the
// Cobra command, configuration loader, and structured logging primitives.
// It exposes helpers to build reusable application instances and to execute
// the default command as a library.
package cli
