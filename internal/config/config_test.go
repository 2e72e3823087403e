package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolvePathExplicitWins(t *testing.T) {
	path, err := ResolvePath("/tmp/custom.yaml")
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.yaml", path)
}

func TestResolvePathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err := ResolvePath("")
	require.NoError(t, err)
	require.Equal(t, "/xdg/amiberry-mcp/config.yaml", path)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.False(t, loaded.Exists)
	require.Len(t, loaded.Warnings, 1)
	require.Equal(t, 5*time.Second, loaded.Config.Socket.Timeout)
	require.Equal(t, "info", loaded.Config.Logging.Level)
	require.NotEmpty(t, loaded.Config.Paths.Configs)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
socket:
  path: /run/user/1000/amiberry.sock
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.True(t, loaded.Exists)
	require.Empty(t, loaded.Warnings)
	require.Equal(t, "/run/user/1000/amiberry.sock", loaded.Config.Socket.Path)
	require.Equal(t, "debug", loaded.Config.Logging.Level)
	// Untouched sections keep their defaults.
	require.Equal(t, 5*time.Second, loaded.Config.Socket.Timeout)
	require.NotEmpty(t, loaded.Config.Paths.Savestates)
}

func TestLoadRepairsBadValuesWithWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
socket:
  timeout: -3
logging:
  level: loud
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Warnings, 2)
	require.Equal(t, 5*time.Second, loaded.Config.Socket.Timeout)
	require.Equal(t, "info", loaded.Config.Logging.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("socket: ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestMediaExtensionChecks(t *testing.T) {
	require.True(t, IsFloppyImage("/data/Workbench.ADF"))
	require.True(t, IsFloppyImage("/data/game.adz"))
	require.False(t, IsFloppyImage("/data/game.hdf"))
	require.True(t, IsHardfile("/data/game.hdf"))
	require.True(t, IsArchive("/data/game.lha"))
	require.True(t, IsCDImage("/data/game.chd"))
	require.True(t, IsDiskImage("/data/game.dms"))
	require.False(t, IsDiskImage("/data/readme.txt"))
}
