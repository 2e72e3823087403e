package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := New(&stdout, &stderr, nil).Root()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func setupCLIEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
}

func TestVersionCommand(t *testing.T) {
	setupCLIEnv(t)

	stdout, _, err := runCLI(t, "version")
	require.NoError(t, err)
	require.Contains(t, stdout, "amiberryctl")
}

func TestConfTemplates(t *testing.T) {
	setupCLIEnv(t)

	stdout, _, err := runCLI(t, "conf", "templates")
	require.NoError(t, err)
	for _, name := range []string{"A500", "A600", "A1200", "A4000", "CD32", "CDTV"} {
		require.Contains(t, stdout, name)
	}
}

func TestConfCreateShowModify(t *testing.T) {
	setupCLIEnv(t)
	path := filepath.Join(t.TempDir(), "demo.uae")

	_, _, err := runCLI(t, "conf", "create", path, "--template", "A1200", "--set", "floppy0=/games/demo.adf")
	require.NoError(t, err)

	stdout, _, err := runCLI(t, "conf", "show", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "CPU: 68020")
	require.Contains(t, stdout, "Chipset: AGA")
	require.Contains(t, stdout, "Chip RAM: 2048 KB")
	require.Contains(t, stdout, "DF0: /games/demo.adf")

	_, _, err = runCLI(t, "conf", "modify", path, "--set", "cpu_model=68030", "--unset", "floppy0")
	require.NoError(t, err)

	stdout, _, err = runCLI(t, "conf", "show", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "CPU: 68030")
	require.NotContains(t, stdout, "DF0:")
}

func TestConfCreateUnknownTemplate(t *testing.T) {
	setupCLIEnv(t)

	_, _, err := runCLI(t, "conf", "create", filepath.Join(t.TempDir(), "x.uae"), "--template", "A9000")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown machine template")
}

func TestConfModifyRejectsBadAssignment(t *testing.T) {
	setupCLIEnv(t)

	_, _, err := runCLI(t, "conf", "modify", filepath.Join(t.TempDir(), "x.uae"), "--set", "novalue")
	require.Error(t, err)
	require.Contains(t, err.Error(), "key=value")
}

func TestResolveConfigPath(t *testing.T) {
	a := &App{}
	a.loaded.Config.Paths.Configs = "/data/configs"

	require.Equal(t, "/data/configs/demo.uae", a.resolveConfigPath("demo"))
	require.Equal(t, "/data/configs/demo.uae", a.resolveConfigPath("demo.uae"))
	require.Equal(t, "/abs/demo.uae", a.resolveConfigPath("/abs/demo.uae"))
	require.Equal(t, "/abs/demo.uae", a.resolveConfigPath("/abs/demo"))
	require.Equal(t, "sub/demo.uae", a.resolveConfigPath("sub/demo"))
}

func TestRomIdentifyUnknown(t *testing.T) {
	setupCLIEnv(t)

	path := filepath.Join(t.TempDir(), "kick.rom")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0x4e}, 262144), 0o644))

	stdout, _, err := runCLI(t, "rom", "identify", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "kick.rom")
	require.Contains(t, stdout, "Kickstart 1.x (256KB)")
	require.Contains(t, stdout, "Size: 256 KB")
}

func TestRomScanEmptyDirectory(t *testing.T) {
	setupCLIEnv(t)
	dir := t.TempDir()

	stdout, _, err := runCLI(t, "rom", "scan", dir)
	require.NoError(t, err)
	require.Contains(t, stdout, "no ROMs found")
}

func TestRomFindNothing(t *testing.T) {
	setupCLIEnv(t)

	_, _, err := runCLI(t, "rom", "find", "A1200", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no ROM for model A1200")
}

func TestSavestateInspectRejectsOtherFiles(t *testing.T) {
	setupCLIEnv(t)

	path := filepath.Join(t.TempDir(), "not-a-state.uss")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, _, err := runCLI(t, "savestate", "inspect", path)
	require.Error(t, err)
}

func TestDisksListsAndFilters(t *testing.T) {
	setupCLIEnv(t)
	dir := t.TempDir()
	for _, name := range []string{"game.adf", "work.hdf", "demo.lha", "cd32.iso", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	stdout, _, err := runCLI(t, "disks", dir)
	require.NoError(t, err)
	require.Contains(t, stdout, "game.adf")
	require.Contains(t, stdout, "work.hdf")
	require.Contains(t, stdout, "demo.lha")
	require.Contains(t, stdout, "cd32.iso")
	require.NotContains(t, stdout, "readme.txt")

	stdout, _, err = runCLI(t, "disks", dir, "--type", "floppy")
	require.NoError(t, err)
	require.Contains(t, stdout, "game.adf")
	require.NotContains(t, stdout, "work.hdf")

	_, _, err = runCLI(t, "disks", dir, "--type", "tape")
	require.Error(t, err)
}

func TestParseSwitch(t *testing.T) {
	on, err := parseSwitch("on")
	require.NoError(t, err)
	require.True(t, on)

	off, err := parseSwitch("off")
	require.NoError(t, err)
	require.False(t, off)

	_, err = parseSwitch("maybe")
	require.Error(t, err)
}
