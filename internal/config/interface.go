package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads every configuration file reachable from paths and merges
	// them, later files overriding earlier ones.
	Load(ctx context.Context, paths ...string) (*Settings, error)
}
