// Package config resolves, parses, validates, and defaults amiberryctl
// configuration.
package config

import "time"

// Config is the fully materialized runtime configuration.
type Config struct {
	Socket  SocketConfig  `yaml:"socket"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

// SocketConfig controls how the emulator control socket is reached.
type SocketConfig struct {
	// Path overrides control socket resolution. Empty means resolve from
	// $XDG_RUNTIME_DIR with a /tmp fallback.
	Path string `yaml:"path"`

	// Timeout bounds one command round trip.
	Timeout time.Duration `yaml:"timeout"`
}

// PathsConfig locates the Amiberry data tree on the host.
type PathsConfig struct {
	Home        string   `yaml:"home"`
	Configs     string   `yaml:"configs"`
	Savestates  string   `yaml:"savestates"`
	Screenshots string   `yaml:"screenshots"`
	Kickstarts  string   `yaml:"kickstarts"`
	DiskImages  []string `yaml:"disk_images"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Message string
}
