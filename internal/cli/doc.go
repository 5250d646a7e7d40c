// Package cli is responsible for parsing command-line arguments, validating
// their shape, and handling process-level concerns like exit codes. It
// translates CLI flags and positional arguments into the application's
// internal configuration.
package cli
