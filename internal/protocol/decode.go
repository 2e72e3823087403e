package protocol

import (
	"strconv"
	"strings"
)

// payload splits the status line of a raw response. An ERROR status becomes a
// CommandRejected carrying the emulator's message verbatim; an unknown status
// token is a framing violation.
func payload(c Command, raw RawResponse) ([]string, error) {
	if raw.Line == "" {
		return nil, protocolErr(c.Keyword, "empty response")
	}
	tokens := strings.Split(raw.Line, Separator)
	switch tokens[0] {
	case StatusOK:
		return tokens[1:], nil
	case StatusError:
		return nil, &CommandRejected{
			Keyword: c.Keyword,
			Message: strings.TrimPrefix(raw.Line, StatusError+Separator),
		}
	default:
		return nil, protocolErr(c.Keyword, "unknown status token %q", tokens[0])
	}
}

// DecodeAck checks a bare OK response.
func DecodeAck(c Command, raw RawResponse) error {
	_, err := payload(c, raw)
	return err
}

// DecodeScalar returns the single payload token of an OK response.
func DecodeScalar(c Command, raw RawResponse) (string, error) {
	fields, err := payload(c, raw)
	if err != nil {
		return "", err
	}
	if len(fields) != 1 {
		return "", protocolErr(c.Keyword, "expected 1 payload field, got %d", len(fields))
	}
	return fields[0], nil
}

// DecodeInt returns the single payload token parsed as a decimal integer.
func DecodeInt(c Command, raw RawResponse) (int, error) {
	s, err := DecodeScalar(c, raw)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, protocolErr(c.Keyword, "payload %q is not an integer", s)
	}
	return value, nil
}

// DecodeUint32 returns the single payload token parsed as a 32-bit unsigned
// value, decimal or 0x-prefixed hexadecimal.
func DecodeUint32(c Command, raw RawResponse) (uint32, error) {
	s, err := DecodeScalar(c, raw)
	if err != nil {
		return 0, err
	}
	value, err := parseUint32(s)
	if err != nil {
		return 0, protocolErr(c.Keyword, "payload %q is not a 32-bit value", s)
	}
	return value, nil
}

// DecodeFields returns the key=value payload tokens of an OK response. Every
// token must contain a key; a bare token is a shape mismatch.
func DecodeFields(c Command, raw RawResponse) (map[string]string, error) {
	fields, err := payload(c, raw)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		key, value, found := strings.Cut(field, "=")
		if !found || key == "" {
			return nil, protocolErr(c.Keyword, "malformed field %q", field)
		}
		values[key] = value
	}
	return values, nil
}

// DecodeRegisters parses the full 68k register dump. Every register in
// RegisterNames must appear exactly once with a parseable value; anything
// less is a shape mismatch, never a partial set.
func DecodeRegisters(c Command, raw RawResponse) (RegisterSet, error) {
	fields, err := DecodeFields(c, raw)
	if err != nil {
		return nil, err
	}
	if len(fields) != len(RegisterNames) {
		return nil, protocolErr(c.Keyword, "expected %d registers, got %d", len(RegisterNames), len(fields))
	}
	regs := make(RegisterSet, len(RegisterNames))
	for _, name := range RegisterNames {
		s, ok := fields[name]
		if !ok {
			return nil, protocolErr(c.Keyword, "register %s missing from dump", name)
		}
		value, err := parseUint32(s)
		if err != nil {
			return nil, protocolErr(c.Keyword, "register %s value %q is not a 32-bit value", name, s)
		}
		regs[name] = value
	}
	return regs, nil
}

// DecodeDebugState parses the PC record returned by activation and stepping.
func DecodeDebugState(c Command, raw RawResponse) (uint32, error) {
	fields, err := DecodeFields(c, raw)
	if err != nil {
		return 0, err
	}
	s, ok := fields["PC"]
	if !ok {
		return 0, protocolErr(c.Keyword, "PC missing from debug state")
	}
	pc, err := parseUint32(s)
	if err != nil {
		return 0, protocolErr(c.Keyword, "PC value %q is not a 32-bit value", s)
	}
	return pc, nil
}

// DecodeFloppyList parses the counted drive block of LIST_FLOPPIES. Each line
// carries exactly drive, image path (may be empty), write-protect flag, motor
// flag, and track.
func DecodeFloppyList(c Command, raw RawResponse) ([]FloppyDrive, error) {
	if _, err := payload(c, raw); err != nil {
		return nil, err
	}
	drives := make([]FloppyDrive, 0, len(raw.Lines))
	for _, line := range raw.Lines {
		fields := strings.Split(line, Separator)
		if len(fields) != 5 {
			return nil, protocolErr(c.Keyword, "drive line has %d fields, expected 5", len(fields))
		}
		drive, err := strconv.Atoi(fields[0])
		if err != nil || drive < 0 || drive > 3 {
			return nil, protocolErr(c.Keyword, "bad drive index %q", fields[0])
		}
		wp, err := parseFlag(fields[2])
		if err != nil {
			return nil, protocolErr(c.Keyword, "bad write-protect flag %q", fields[2])
		}
		motor, err := parseFlag(fields[3])
		if err != nil {
			return nil, protocolErr(c.Keyword, "bad motor flag %q", fields[3])
		}
		track, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, protocolErr(c.Keyword, "bad track %q", fields[4])
		}
		drives = append(drives, FloppyDrive{
			Drive:          drive,
			Image:          fields[1],
			WriteProtected: wp,
			MotorOn:        motor,
			Track:          track,
		})
	}
	return drives, nil
}

// DecodeBreakpointList parses the counted breakpoint block of
// LIST_BREAKPOINTS: one `address<TAB>enabled` line per entry.
func DecodeBreakpointList(c Command, raw RawResponse) ([]Breakpoint, error) {
	if _, err := payload(c, raw); err != nil {
		return nil, err
	}
	breakpoints := make([]Breakpoint, 0, len(raw.Lines))
	for _, line := range raw.Lines {
		fields := strings.Split(line, Separator)
		if len(fields) != 2 {
			return nil, protocolErr(c.Keyword, "breakpoint line has %d fields, expected 2", len(fields))
		}
		addr, err := parseUint32(fields[0])
		if err != nil {
			return nil, protocolErr(c.Keyword, "bad breakpoint address %q", fields[0])
		}
		enabled, err := parseFlag(fields[1])
		if err != nil {
			return nil, protocolErr(c.Keyword, "bad enabled flag %q", fields[1])
		}
		breakpoints = append(breakpoints, Breakpoint{Address: addr, Enabled: enabled})
	}
	return breakpoints, nil
}

// DecodeBlob returns the raw binary payload of an OK response. The transport
// already enforced the declared length.
func DecodeBlob(c Command, raw RawResponse) ([]byte, error) {
	if _, err := payload(c, raw); err != nil {
		return nil, err
	}
	return raw.Blob, nil
}

func parseUint32(s string) (uint32, error) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		value, err := strconv.ParseUint(rest, 16, 32)
		return uint32(value), err
	}
	if rest, ok := strings.CutPrefix(s, "0X"); ok {
		value, err := strconv.ParseUint(rest, 16, 32)
		return uint32(value), err
	}
	value, err := strconv.ParseUint(s, 10, 32)
	return uint32(value), err
}

func parseFlag(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, strconv.ErrSyntax
	}
}
