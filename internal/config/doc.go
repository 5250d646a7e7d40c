// Package config defines the format-agnostic parameter model for a run and
// the Loader interface that file-based parameter sources implement.
//
// Concrete implementations, such as for HCL, are provided in separate
// packages.
package config
