package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// RegisterNames is the fixed 68k register set reported by DEBUG_REGS, in wire
// order: data registers, address registers, program counter, status register,
// user and supervisor stack pointers.
var RegisterNames = []string{
	"D0", "D1", "D2", "D3", "D4", "D5", "D6", "D7",
	"A0", "A1", "A2", "A3", "A4", "A5", "A6", "A7",
	"PC", "SR", "USP", "SSP",
}

// RegisterSet maps register names to their 32-bit values.
type RegisterSet map[string]uint32

// PC returns the program counter value.
func (r RegisterSet) PC() uint32 { return r["PC"] }

// FloppyDrive is one drive slot snapshot from LIST_FLOPPIES.
type FloppyDrive struct {
	Drive          int
	Image          string // empty when no disk inserted
	WriteProtected bool
	MotorOn        bool
	Track          int
}

// Breakpoint is one debugger breakpoint entry.
type Breakpoint struct {
	Address uint32
	Enabled bool
}

// MemoryValue is one memory read result.
type MemoryValue struct {
	Address uint32
	Width   int
	Value   uint32
}

// ParseAddress parses a 32-bit hexadecimal address, with or without an 0x
// prefix.
func ParseAddress(s string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if trimmed == "" {
		return 0, fmt.Errorf("empty address")
	}
	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse address %q: not a 32-bit hex value", s)
	}
	return uint32(value), nil
}

func formatAddress(addr uint32) string {
	return fmt.Sprintf("0x%x", addr)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
