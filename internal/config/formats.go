package config

import (
	"path/filepath"
	"slices"
	"strings"
)

// Media extension sets recognized by Amiberry.
var (
	FloppyExtensions   = []string{".adf", ".adz", ".dms"}
	HardfileExtensions = []string{".hdf", ".hdz"}
	ArchiveExtensions  = []string{".lha"}
	CDExtensions       = []string{".iso", ".cue", ".chd", ".bin", ".nrg"}
)

func hasExtension(path string, extensions []string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(path)))
}

// IsFloppyImage reports whether path looks like a floppy disk image.
func IsFloppyImage(path string) bool { return hasExtension(path, FloppyExtensions) }

// IsHardfile reports whether path looks like a hardfile image.
func IsHardfile(path string) bool { return hasExtension(path, HardfileExtensions) }

// IsArchive reports whether path looks like a WHDLoad archive.
func IsArchive(path string) bool { return hasExtension(path, ArchiveExtensions) }

// IsCDImage reports whether path looks like a CD image.
func IsCDImage(path string) bool { return hasExtension(path, CDExtensions) }

// IsDiskImage reports whether path matches any mountable disk extension.
func IsDiskImage(path string) bool {
	return IsFloppyImage(path) || IsHardfile(path) || IsArchive(path)
}
