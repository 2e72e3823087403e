package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/config"
)

func TestReportOKAndString(t *testing.T) {
	report := Report{Checks: []Check{
		{Name: "one", Pass: true, Message: "good"},
		{Name: "two", Pass: false, Message: "bad"},
	}}

	require.False(t, report.OK())
	text := report.String()
	require.Contains(t, text, "[OK] one: good")
	require.Contains(t, text, "[FAIL] two: bad")
}

func TestReportOKAllPassing(t *testing.T) {
	report := Report{Checks: []Check{{Name: "one", Pass: true}, {Name: "two", Pass: true}}}
	require.True(t, report.OK())
}

func TestCheckBinaryFound(t *testing.T) {
	check := checkBinary("sh", "shell available")
	require.True(t, check.Pass)
	require.Contains(t, check.Message, "shell available")
}

func TestCheckBinaryMissing(t *testing.T) {
	check := checkBinary("definitely-not-a-real-binary", "unused")
	require.False(t, check.Pass)
	require.Contains(t, check.Message, "binary not found")
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()

	check := checkDir("configs", dir)
	require.True(t, check.Pass)

	check = checkDir("configs", filepath.Join(dir, "absent"))
	require.False(t, check.Pass)
	require.Contains(t, check.Message, "missing directory")

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	check = checkDir("configs", file)
	require.False(t, check.Pass)
	require.Contains(t, check.Message, "not a directory")
}

func TestCheckSocketNotRunning(t *testing.T) {
	cfg := config.Default()
	cfg.Socket.Path = filepath.Join(t.TempDir(), "absent.sock")
	cfg.Socket.Timeout = 200 * time.Millisecond

	check := checkSocket(context.Background(), cfg)
	require.False(t, check.Pass)
	require.Contains(t, check.Message, "control socket does not exist")
}

func TestCheckKickstarts(t *testing.T) {
	dir := t.TempDir()

	check := checkKickstarts(dir)
	require.False(t, check.Pass)
	require.Contains(t, check.Message, "no ROM files found")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "kick.rom"), []byte("rom bytes"), 0o644))
	check = checkKickstarts(dir)
	require.True(t, check.Pass)
	require.Contains(t, check.Message, "1 ROM files (0 identified)")
}

func TestRunProducesAllChecks(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Socket.Path = filepath.Join(base, "absent.sock")
	cfg.Socket.Timeout = 200 * time.Millisecond
	cfg.Paths.Configs = filepath.Join(base, "conf")
	cfg.Paths.Savestates = filepath.Join(base, "savestates")
	cfg.Paths.Screenshots = filepath.Join(base, "screenshots")
	cfg.Paths.Kickstarts = filepath.Join(base, "kickstarts")

	report := Run(context.Background(), config.Loaded{Path: "/tmp/config.yaml", Config: cfg})
	require.Len(t, report.Checks, 8)

	names := make([]string, 0, len(report.Checks))
	for _, check := range report.Checks {
		names = append(names, check.Name)
	}
	require.Contains(t, names, "config")
	require.Contains(t, names, "amiberry")
	require.Contains(t, names, "socket")
	require.Contains(t, names, "paths.kickstarts")
	require.Contains(t, names, "kickstarts")
}
