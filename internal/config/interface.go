package config

import "context"

// Loader is the interface for a format-specific parameter loader.
type Loader interface {
	// Load reads the parameter file at path and returns its values as
	// unvalidated decimal text.
	Load(ctx context.Context, path string) (*Params, error)
}
