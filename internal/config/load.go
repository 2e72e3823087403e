package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loaded captures resolved config path, parsed values, and non-fatal warnings.
type Loaded struct {
	Path     string
	Config   Config
	Warnings []Warning
	Exists   bool
}

// Load resolves, reads, parses, and validates the runtime configuration. A
// missing file is not an error; defaults apply with a warning.
func Load(explicitPath string) (Loaded, error) {
	resolvedPath, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}

	cfg := Default()
	content, err := os.ReadFile(resolvedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Loaded{
				Path:   resolvedPath,
				Config: cfg,
				Warnings: []Warning{{
					Message: fmt.Sprintf("config file %q not found; using defaults", resolvedPath),
				}},
				Exists: false,
			}, nil
		}
		return Loaded{}, fmt.Errorf("read config %q: %w", resolvedPath, err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Loaded{}, fmt.Errorf("parse config %q: %w", resolvedPath, err)
	}

	warnings := validate(&cfg)
	return Loaded{
		Path:     resolvedPath,
		Config:   cfg,
		Warnings: warnings,
		Exists:   true,
	}, nil
}

// validate repairs out-of-range values in place, reporting each repair as a
// warning.
func validate(cfg *Config) []Warning {
	var warnings []Warning

	if cfg.Socket.Timeout <= 0 {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("socket.timeout %v is not positive; using default", cfg.Socket.Timeout),
		})
		cfg.Socket.Timeout = Default().Socket.Timeout
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("logging.level %q is unknown; using %q", cfg.Logging.Level, "info"),
		})
		cfg.Logging.Level = "info"
	}

	return warnings
}
