package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// LoadFile reads a single configuration file and translates it into the
	// format-agnostic model. A syntax error in the file surfaces as an error
	// here; callers decide whether that is fatal.
	LoadFile(ctx context.Context, path string) (*File, error)
}
