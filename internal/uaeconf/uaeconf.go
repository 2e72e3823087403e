// Package uaeconf reads and writes Amiberry .uae configuration files: flat
// key=value text with ; and # comment lines. Values may themselves contain
// equals signs, so only the first one splits.
package uaeconf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Config holds the key=value pairs of one .uae file.
type Config map[string]string

// Parse extracts key=value pairs from .uae file content. Comment lines, blank
// lines, and lines without a separator are skipped.
func Parse(content string) Config {
	cfg := make(Config)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		cfg[key] = strings.TrimSpace(value)
	}
	return cfg
}

// ParseFile reads and parses the .uae file at path.
func ParseFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read uae config: %w", err)
	}
	return Parse(string(content)), nil
}

// WriteFile writes the config to path with a header comment, creating parent
// directories as needed. Keys are sorted for stable output.
func WriteFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	keys := make([]string, 0, len(cfg))
	for key := range cfg {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("; Amiga configuration\n")
	b.WriteString("; Written by amiberry-mcp-server\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(cfg[key])
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write uae config: %w", err)
	}
	return nil
}

// ModifyFile applies key updates to an existing .uae file and writes it back.
// Keys in unset are removed.
func ModifyFile(path string, set Config, unset []string) (Config, error) {
	cfg, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	for key, value := range set {
		cfg[key] = value
	}
	for _, key := range unset {
		delete(cfg, key)
	}
	if err := WriteFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
