package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
