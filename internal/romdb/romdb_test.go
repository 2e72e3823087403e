package romdb

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeROM(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestIdentifyChecksums(t *testing.T) {
	path := writeROM(t, t.TempDir(), "check.rom", []byte("123456789"))

	rom, err := Identify(path)
	require.NoError(t, err)
	require.Equal(t, "CBF43926", rom.CRC32)
	require.Equal(t, "25f9e794323b453885f5181f1b624d0b", rom.MD5)
	require.NotZero(t, rom.Digest)
	require.Equal(t, int64(9), rom.Size)
	require.False(t, rom.Identified)
	require.Equal(t, "Unknown", rom.ProbableType)
}

func TestIdentifySizeGuess(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		size int
		want string
	}{
		{262144, "Kickstart 1.x (256KB)"},
		{524288, "Kickstart 2.x/3.x (512KB)"},
		{1048576, "Extended ROM or combined ROM (1MB)"},
		{12345, "Unknown"},
	} {
		path := writeROM(t, dir, "guess.rom", bytes.Repeat([]byte{0xAA}, tc.size))
		rom, err := Identify(path)
		require.NoError(t, err)
		require.False(t, rom.Identified)
		require.Equal(t, tc.want, rom.ProbableType)
	}
}

func TestIdentifyMissingFile(t *testing.T) {
	_, err := Identify(filepath.Join(t.TempDir(), "absent.rom"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestScanFindsAndDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeROM(t, dir, "kick13.rom", []byte("rom content one"))
	writeROM(t, dir, "kick13-copy.rom", []byte("rom content one"))
	writeROM(t, dir, "kick31.bin", []byte("rom content two"))
	writeROM(t, dir, "readme.txt", []byte("not a rom"))
	writeROM(t, dir, filepath.Join("sub", "kick20.a500"), []byte("rom content three"))

	roms, err := Scan(dir, true)
	require.NoError(t, err)
	require.Len(t, roms, 3)

	names := make([]string, 0, len(roms))
	for _, rom := range roms {
		names = append(names, rom.Filename)
	}
	require.Contains(t, names, "kick31.bin")
	require.Contains(t, names, "kick20.a500")
	// Only one of the two identical files survives.
	require.Subset(t, []string{"kick13.rom", "kick13-copy.rom", "kick31.bin", "kick20.a500"}, names)
}

func TestScanNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeROM(t, dir, "top.rom", []byte("top"))
	writeROM(t, dir, filepath.Join("sub", "nested.rom"), []byte("nested"))

	roms, err := Scan(dir, false)
	require.NoError(t, err)
	require.Len(t, roms, 1)
	require.Equal(t, "top.rom", roms[0].Filename)
}

func TestScanMissingDirectory(t *testing.T) {
	roms, err := Scan(filepath.Join(t.TempDir(), "absent"), true)
	require.NoError(t, err)
	require.Empty(t, roms)
}

func TestFindForModel(t *testing.T) {
	roms := []ROM{
		{Identified: true, Model: "A500/A1000/A2000", Version: "1.3", Filename: "kick13.rom"},
		{Identified: true, Model: "A1200", Version: "3.1", Filename: "kick31-a1200.rom"},
		{Identified: false, Model: "", Filename: "mystery.rom"},
	}

	hit := FindForModel(roms, "A1200")
	require.NotNil(t, hit)
	require.Equal(t, "kick31-a1200.rom", hit.Filename)

	hit = FindForModel(roms, "a500")
	require.NotNil(t, hit)
	require.Equal(t, "kick13.rom", hit.Filename)

	// A600 has no exact match; the compatibility table has no hit either
	// because neither ROM covers A600 or A500+.
	require.Nil(t, FindForModel(roms, "A600"))

	require.Nil(t, FindForModel(nil, "A1200"))
}

func TestFindForModelCompatibleFallback(t *testing.T) {
	roms := []ROM{
		{Identified: true, Model: "A4000T", Filename: "kick31-a4000t.rom"},
	}

	hit := FindForModel(roms, "A4000")
	require.NotNil(t, hit)
	require.Equal(t, "kick31-a4000t.rom", hit.Filename)
}

func TestSummary(t *testing.T) {
	identified := ROM{
		Filename:   "kick31.rom",
		Size:       524288,
		CRC32:      "D6BAE334",
		Identified: true,
		Version:    "3.1",
		Revision:   "40.68",
		Model:      "A1200",
	}
	s := Summary(identified)
	require.Contains(t, s, "ROM: kick31.rom")
	require.Contains(t, s, "Kickstart 3.1 (Rev 40.68)")
	require.Contains(t, s, "Model: A1200")
	require.Contains(t, s, "Size: 512 KB")
	require.Contains(t, s, "CRC32: D6BAE334")

	unknown := ROM{Filename: "odd.rom", Size: 1024, CRC32: "00000000", ProbableType: "Unknown"}
	s = Summary(unknown)
	require.Contains(t, s, "Type: Unknown (unidentified)")
}
