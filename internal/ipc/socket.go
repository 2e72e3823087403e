// Package ipc owns the unix-socket connection to a running Amiberry process:
// socket path resolution, one blocking write-then-read exchange per call, and
// a cheap availability probe. The emulator creates the socket; this side only
// connects.
package ipc

import (
	"os"
	"path/filepath"
	"strings"
)

const socketName = "amiberry.sock"

// fallbackSocketPath is where Amiberry puts the socket when no runtime dir is
// available.
const fallbackSocketPath = "/tmp/amiberry.sock"

// SocketPath resolves the control socket location. An explicit override wins;
// otherwise $XDG_RUNTIME_DIR/amiberry.sock is preferred when it exists, with
// /tmp/amiberry.sock as the fallback.
func SocketPath(override string) string {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return trimmed
	}
	if runtimeDir := strings.TrimSpace(os.Getenv("XDG_RUNTIME_DIR")); runtimeDir != "" {
		path := filepath.Join(runtimeDir, socketName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return fallbackSocketPath
}
