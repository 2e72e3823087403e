// Package savestate reads metadata from Amiberry .uss savestate files without
// loading the full machine state. The on-disk format is ASF (AmigaStateFile):
// a 4-byte magic, a big-endian version word, three null-terminated header
// strings, then a sequence of chunks whose 4-byte size field includes the
// 8-byte chunk header.
package savestate

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var magic = []byte("ASF ")

const chunkHeaderSize = 8

// ErrNotSavestate reports a file that does not carry the ASF header.
var ErrNotSavestate = errors.New("not a savestate file: missing ASF header")

// Chunk describes one chunk's position in the file.
type Chunk struct {
	Name     string
	Offset   int
	Size     int // includes the 8-byte chunk header
	DataSize int
}

// CPUInfo is decoded from the CPU, FPU, and CHIP chunks.
type CPUInfo struct {
	Model   string // e.g. 68020
	FPU     string // empty when none
	Chipset string // OCS, ECS, or AGA
	Flags   uint32
}

// ROMInfo is decoded from the ROM chunk.
type ROMInfo struct {
	Start    uint32
	Size     uint32
	Type     uint32
	Flags    uint32
	Version  uint16
	Revision uint16
	CRC      string // uppercase hex, empty when absent
	ID       string
}

// MemoryKB reports RAM bank sizes in kilobytes.
type MemoryKB struct {
	Chip int
	Bogo int
	Fast int
	Z3   int
}

// DiskDrive is one DSKx chunk: a floppy drive's state at save time.
type DiskDrive struct {
	Drive string // DF0 through DF3
	ID    uint32
	State byte
	Track byte
	Image string
}

// Metadata is everything Inspect extracts from a savestate.
type Metadata struct {
	File            string
	Filename        string
	SizeBytes       int
	Version         uint32
	Emulator        string
	EmulatorVersion string
	Description     string
	CPU             *CPUInfo
	ROM             *ROMInfo
	Memory          MemoryKB
	Disks           []DiskDrive
	Chunks          []string
}

// MotorOn reports whether the drive motor was running at save time.
func (d DiskDrive) MotorOn() bool { return d.State&1 != 0 }

func u32(data []byte, offset int) uint32 {
	return binary.BigEndian.Uint32(data[offset : offset+4])
}

func u16(data []byte, offset int) uint16 {
	return binary.BigEndian.Uint16(data[offset : offset+2])
}

// cString reads a null-terminated string, returning it and the bytes
// consumed including the terminator. A missing terminator consumes nothing.
func cString(data []byte, offset int) (string, int) {
	end := bytes.IndexByte(data[offset:], 0)
	if end < 0 {
		return "", 0
	}
	return string(data[offset : offset+end]), end + 1
}

// Inspect reads a savestate file and extracts its metadata.
func Inspect(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read savestate: %w", err)
	}
	if len(data) < len(magic) || !bytes.Equal(data[:len(magic)], magic) {
		return Metadata{}, fmt.Errorf("%s: %w", path, ErrNotSavestate)
	}

	md := Metadata{
		File:      path,
		Filename:  filepath.Base(path),
		SizeBytes: len(data),
	}

	offset := len(magic)
	if offset+4 <= len(data) {
		md.Version = u32(data, offset)
		offset += 4
	}
	for _, field := range []*string{&md.Emulator, &md.EmulatorVersion, &md.Description} {
		if offset >= len(data) {
			break
		}
		s, consumed := cString(data, offset)
		*field = s
		offset += consumed
	}

	var cpu CPUInfo
	var rom ROMInfo
	var haveCPU, haveROM bool
	var memory [4]uint32 // chip, bogo, fast, z3 in bytes

	for offset+chunkHeaderSize <= len(data) {
		name := string(data[offset : offset+4])
		size := int(u32(data, offset+4))
		if size == 0 || size > len(data)-offset {
			break
		}
		chunk := data[offset+chunkHeaderSize : offset+size]
		md.Chunks = append(md.Chunks, name)

		switch {
		case name == "CPU " && len(chunk) >= 8:
			cpu.Model = fmt.Sprintf("68%03d", u32(chunk, 0))
			cpu.Flags = u32(chunk, 4)
			haveCPU = true
		case name == "FPU " && len(chunk) >= 4:
			if model := u32(chunk, 0); model > 0 {
				cpu.FPU = fmt.Sprintf("68%03d", model)
				haveCPU = true
			}
		case name == "CHIP" && len(chunk) >= 4:
			flags := u32(chunk, 0)
			switch {
			case flags&4 != 0:
				cpu.Chipset = "AGA"
			case flags&3 != 0:
				cpu.Chipset = "ECS"
			default:
				cpu.Chipset = "OCS"
			}
			haveCPU = true
		case name == "ROM " && len(chunk) >= 20:
			rom.Start = u32(chunk, 0)
			rom.Size = u32(chunk, 4)
			rom.Type = u32(chunk, 8)
			rom.Flags = u32(chunk, 12)
			rom.Version = u16(chunk, 16)
			rom.Revision = u16(chunk, 18)
			if len(chunk) >= 24 {
				rom.CRC = fmt.Sprintf("%08X", u32(chunk, 20))
			}
			if len(chunk) > 24 {
				if id, _ := cString(chunk, 24); id != "" {
					rom.ID = id
				}
			}
			haveROM = true
		case name == "CRAM" && len(chunk) >= 8:
			memory[0] = u32(chunk, 4)
		case name == "BRAM" && len(chunk) >= 8:
			memory[1] = u32(chunk, 4)
		case name == "FRAM" && len(chunk) >= 8:
			memory[2] = u32(chunk, 4)
		case name == "ZRAM" && len(chunk) >= 8:
			memory[3] = u32(chunk, 4)
		case len(name) == 4 && name[:3] == "DSK" && name[3] >= '0' && name[3] <= '3' && len(chunk) >= 8:
			drive := DiskDrive{
				Drive: "DF" + string(name[3]),
				ID:    u32(chunk, 0),
				State: chunk[4],
				Track: chunk[5],
			}
			if len(chunk) > 20 {
				drive.Image, _ = cString(chunk, 20)
			}
			md.Disks = append(md.Disks, drive)
		}

		if name == "END " {
			break
		}
		offset += size
	}

	if haveCPU {
		md.CPU = &cpu
	}
	if haveROM {
		md.ROM = &rom
	}
	md.Memory = MemoryKB{
		Chip: int(memory[0] / 1024),
		Bogo: int(memory[1] / 1024),
		Fast: int(memory[2] / 1024),
		Z3:   int(memory[3] / 1024),
	}
	return md, nil
}

// ListChunks walks the chunk table of a savestate file without decoding any
// chunk contents.
func ListChunks(path string) ([]Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read savestate: %w", err)
	}
	if len(data) < len(magic) || !bytes.Equal(data[:len(magic)], magic) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotSavestate)
	}

	offset := len(magic) + 4
	for i := 0; i < 3 && offset < len(data); i++ {
		_, consumed := cString(data, offset)
		if consumed == 0 {
			break
		}
		offset += consumed
	}

	var chunks []Chunk
	for offset+chunkHeaderSize <= len(data) {
		name := string(data[offset : offset+4])
		size := int(u32(data, offset+4))
		if size == 0 || size > len(data)-offset {
			break
		}
		chunks = append(chunks, Chunk{
			Name:     name,
			Offset:   offset,
			Size:     size,
			DataSize: size - chunkHeaderSize,
		})
		if name == "END " {
			break
		}
		offset += size
	}
	return chunks, nil
}
