package uaeconf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleConfig(t *testing.T) {
	cfg := Parse("cpu_model=68000\nchipmem_size=2\n")
	require.Equal(t, "68000", cfg["cpu_model"])
	require.Equal(t, "2", cfg["chipmem_size"])
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	cfg := Parse("; This is a comment\ncpu_model=68020\n# Another comment\n\n\nchipset=aga\n")
	require.Len(t, cfg, 2)
	require.Equal(t, "68020", cfg["cpu_model"])
	require.Equal(t, "aga", cfg["chipset"])
}

func TestParseValueContainingEquals(t *testing.T) {
	cfg := Parse("path=/some/path=with=equals\n")
	require.Equal(t, "/some/path=with=equals", cfg["path"])
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nonexistent.uae"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "test.uae")
	cfg := Config{"cpu_model": "68000", "chipset": "ocs"}

	require.NoError(t, WriteFile(path, cfg))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), ";"))
	require.Contains(t, strings.ToLower(string(content)), "amiberry-mcp-server")
	require.Contains(t, string(content), "cpu_model=68000")
	require.Contains(t, string(content), "chipset=ocs")

	parsed, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, cfg, parsed)
}

func TestModifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.uae")
	require.NoError(t, os.WriteFile(path, []byte("cpu_model=68000\nchipset=ocs\n"), 0o644))

	cfg, err := ModifyFile(path, Config{"cpu_model": "68020", "chipmem_size": "4"}, []string{"chipset"})
	require.NoError(t, err)
	require.Equal(t, "68020", cfg["cpu_model"])
	require.Equal(t, "4", cfg["chipmem_size"])
	require.NotContains(t, cfg, "chipset")

	// The change is persisted.
	reread, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, cfg, reread)
}

func TestFromTemplate(t *testing.T) {
	dir := t.TempDir()

	cfg, err := FromTemplate(filepath.Join(dir, "a500.uae"), "A500", nil)
	require.NoError(t, err)
	require.Equal(t, "68000", cfg["cpu_model"])
	require.Equal(t, "ocs", cfg["chipset"])

	cfg, err = FromTemplate(filepath.Join(dir, "a1200.uae"), "A1200", nil)
	require.NoError(t, err)
	require.Equal(t, "68020", cfg["cpu_model"])
	require.Equal(t, "aga", cfg["chipset"])

	cfg, err = FromTemplate(filepath.Join(dir, "cd32.uae"), "CD32", nil)
	require.NoError(t, err)
	require.Equal(t, "true", cfg["cd32cd"])
}

func TestFromTemplateWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.uae")

	cfg, err := FromTemplate(path, "A500", Config{"chipmem_size": "4", "fastmem_size": "4"})
	require.NoError(t, err)
	require.Equal(t, "68000", cfg["cpu_model"])
	require.Equal(t, "4", cfg["chipmem_size"])
	require.Equal(t, "4", cfg["fastmem_size"])
}

func TestFromTemplateUnknownModel(t *testing.T) {
	_, err := FromTemplate(filepath.Join(t.TempDir(), "x.uae"), "InvalidModel", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown machine template")
}

func TestSummarize(t *testing.T) {
	cfg := Config{
		"cpu_model":            "68020",
		"cpu_speed":            "max",
		"chipset":              "aga",
		"chipmem_size":         "4",
		"fastmem_size":         "8",
		"floppy0":              "/path/to/disk1.adf",
		"floppy1":              "/path/to/disk2.adf",
		"kickstart_rom_file":   "/roms/kick31.rom",
		"gfx_width":            "800",
		"gfx_height":           "600",
		"gfx_fullscreen_amiga": "true",
	}

	s := Summarize(cfg)
	require.Equal(t, "68020", s.CPUModel)
	require.Equal(t, "max", s.CPUSpeed)
	require.Equal(t, "aga", s.Chipset)
	require.Equal(t, 2048, s.ChipKB)
	require.Equal(t, 8192, s.FastKB)
	require.Len(t, s.Floppies, 2)
	require.Equal(t, FloppySlot{Drive: "DF0", Image: "/path/to/disk1.adf"}, s.Floppies[0])
	require.Equal(t, "/roms/kick31.rom", s.Kickstart)
	require.Equal(t, "800", s.Width)
	require.True(t, s.Fullscreen)
}

func TestSummarizeNormalizesBareCPUModel(t *testing.T) {
	s := Summarize(Config{"cpu_model": "020"})
	require.Equal(t, "68020", s.CPUModel)
}

func TestTemplateNamesSorted(t *testing.T) {
	names := TemplateNames()
	require.Contains(t, names, "A500")
	require.Contains(t, names, "CD32")
	require.IsNonDecreasing(t, names)
}
