// Package romdb identifies and catalogs Amiga Kickstart ROM files by
// checksum.
package romdb

import (
	"crypto/md5"
	"fmt"
	"hash/crc32"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash"
)

// ROM is the identification result for one ROM file.
type ROM struct {
	File     string
	Filename string
	Size     int64
	CRC32    string // uppercase hex
	MD5      string // lowercase hex
	Digest   uint64 // content hash used for duplicate detection

	Identified   bool
	Version      string
	Revision     string
	Model        string
	ProbableType string // size-based guess when unidentified
}

// Identify reads a ROM file and looks it up in the known Kickstart catalog.
// Unknown ROMs get a size-based type guess instead.
func Identify(path string) (ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ROM{}, fmt.Errorf("read rom: %w", err)
	}

	rom := ROM{
		File:     path,
		Filename: filepath.Base(path),
		Size:     int64(len(data)),
		CRC32:    fmt.Sprintf("%08X", crc32.ChecksumIEEE(data)),
		MD5:      fmt.Sprintf("%x", md5.Sum(data)),
		Digest:   xxhash.Sum64(data),
	}

	if entry, ok := knownROMs[rom.CRC32]; ok {
		rom.Identified = true
		rom.Version = entry.Version
		rom.Revision = entry.Revision
		rom.Model = entry.Model
		return rom, nil
	}

	switch rom.Size {
	case 262144:
		rom.ProbableType = "Kickstart 1.x (256KB)"
	case 524288:
		rom.ProbableType = "Kickstart 2.x/3.x (512KB)"
	case 1048576:
		rom.ProbableType = "Extended ROM or combined ROM (1MB)"
	default:
		rom.ProbableType = "Unknown"
	}
	return rom, nil
}

// Scan walks a directory for ROM candidates and identifies each. Files whose
// content duplicates an earlier hit are skipped; unreadable candidates are
// skipped as well. A missing directory yields an empty result.
func Scan(dir string, recursive bool) ([]ROM, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan rom directory: %w", err)
	}

	var roms []ROM
	seen := make(map[uint64]bool)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if !isROMCandidate(path) {
			return nil
		}
		rom, err := Identify(path)
		if err != nil {
			return nil
		}
		if seen[rom.Digest] {
			return nil
		}
		seen[rom.Digest] = true
		roms = append(roms, rom)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan rom directory: %w", err)
	}
	return roms, nil
}

func isROMCandidate(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// FindForModel picks the best ROM for an Amiga model: an exact model match
// first, then the known-compatible substitutes in preference order. Returns
// nil when nothing fits.
func FindForModel(roms []ROM, model string) *ROM {
	want := strings.ToUpper(model)

	for i := range roms {
		if roms[i].Identified && strings.Contains(strings.ToUpper(roms[i].Model), want) {
			return &roms[i]
		}
	}

	for _, compat := range compatibleModels[want] {
		for i := range roms {
			if roms[i].Identified && strings.Contains(strings.ToUpper(roms[i].Model), compat) {
				return &roms[i]
			}
		}
	}
	return nil
}

// Summary renders one ROM identification as the multi-line digest shown by
// the CLI.
func Summary(rom ROM) string {
	lines := []string{"ROM: " + rom.Filename}

	if rom.Identified {
		lines = append(lines, fmt.Sprintf("Kickstart %s (Rev %s)", rom.Version, rom.Revision))
		lines = append(lines, "Model: "+rom.Model)
	} else if rom.ProbableType != "" {
		lines = append(lines, fmt.Sprintf("Type: %s (unidentified)", rom.ProbableType))
	}

	lines = append(lines, fmt.Sprintf("Size: %d KB", rom.Size/1024))
	lines = append(lines, "CRC32: "+rom.CRC32)
	return strings.Join(lines, "\n")
}
