package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"memory/misc"
)

const fileName = "memory.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.memory/config.yaml -> ./configs/memory.yaml -> embedded default
//
// Values missing from the file keep their Default() value.
// Environment (and a .env file in the working directory) is applied on top, see ApplyEnv.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	// .env is optional
	_ = godotenv.Load()

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if exists, err := misc.CheckFileExists(path); err != nil || !exists {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			misc.WarnLogger.Warn("could not read config", "path", path, "error", err)
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			misc.WarnLogger.Warn("could not parse config", "path", path, "error", err)
			continue
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with MEMORY_SEED and MEMORY_LOG_LEVEL when they are set.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv("MEMORY_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MEMORY_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("MEMORY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memory", "config.yaml")
}
