package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Default returns the canonical runtime configuration used when no file is
// present. Path defaults follow Amiberry's own data tree layout, which is
// capitalized on macOS and lowercase on Linux.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	amiberryHome := filepath.Join(home, "Amiberry")

	paths := PathsConfig{
		Home:        amiberryHome,
		Configs:     filepath.Join(amiberryHome, "conf"),
		Savestates:  filepath.Join(amiberryHome, "savestates"),
		Screenshots: filepath.Join(amiberryHome, "screenshots"),
		Kickstarts:  filepath.Join(amiberryHome, "kickstarts"),
		DiskImages: []string{
			filepath.Join(amiberryHome, "floppies"),
			filepath.Join(amiberryHome, "harddrives"),
			filepath.Join(amiberryHome, "lha"),
		},
	}
	if runtime.GOOS == "darwin" {
		paths.Configs = filepath.Join(amiberryHome, "Configurations")
		paths.Savestates = filepath.Join(amiberryHome, "Savestates")
		paths.Screenshots = filepath.Join(amiberryHome, "Screenshots")
		paths.Kickstarts = filepath.Join(amiberryHome, "Kickstarts")
		paths.DiskImages = []string{
			filepath.Join(amiberryHome, "Floppies"),
			filepath.Join(amiberryHome, "Harddrives"),
			filepath.Join(amiberryHome, "Lha"),
		}
	}

	return Config{
		Socket: SocketConfig{
			Timeout: 5 * time.Second,
		},
		Paths: paths,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
