package config

import "context"

// Loader is the interface for a format-specific seed graph loader.
type Loader interface {
	// Load reads every file under the given paths and merges them into a
	// single seed.
	Load(ctx context.Context, paths ...string) (*Seed, error)
}
