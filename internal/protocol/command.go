package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one encodable request. The keyword set is closed: commands are
// only built through the constructors below, which validate every parameter
// so an invalid call never consumes a wire round trip.
type Command struct {
	Keyword string
	Args    []string
	Shape   Shape
}

// Encode renders the command into its wire request form.
func (c Command) Encode() []byte {
	parts := append([]string{c.Keyword}, c.Args...)
	return []byte(strings.Join(parts, Separator) + Terminator)
}

func command(keyword string, shape Shape, args ...string) Command {
	return Command{Keyword: keyword, Args: args, Shape: shape}
}

// Emulation control.

func Ping() Command    { return command("PING", ShapeScalar) }
func Status() Command  { return command("GET_STATUS", ShapeFields) }
func Pause() Command   { return command("PAUSE", ShapeAck) }
func Resume() Command  { return command("RESUME", ShapeAck) }
func Quit() Command    { return command("QUIT", ShapeAck) }
func Version() Command { return command("GET_VERSION", ShapeScalar) }

// Reset requests a soft (keyboard) or hard reset.
func Reset(hard bool) Command {
	kind := "SOFT"
	if hard {
		kind = "HARD"
	}
	return command("RESET", ShapeAck, kind)
}

// FrameAdvance steps the emulation by the given number of frames. The wire
// protocol accepts it while the emulation is running, but its effect is only
// defined while paused.
func FrameAdvance(frames int) (Command, error) {
	if frames < 1 {
		return Command{}, validationErr("frames", "must be at least 1, got %d", frames)
	}
	return command("FRAME_ADVANCE", ShapeAck, strconv.Itoa(frames)), nil
}

// Screenshot asks the emulator to write a screenshot to path.
func Screenshot(path string) (Command, error) {
	if err := checkPath("path", path); err != nil {
		return Command{}, err
	}
	return command("SCREENSHOT", ShapeAck, path), nil
}

// Media control.

func InsertFloppy(drive int, path string) (Command, error) {
	if err := checkDrive(drive); err != nil {
		return Command{}, err
	}
	if err := checkPath("path", path); err != nil {
		return Command{}, err
	}
	return command("INSERT_FLOPPY", ShapeAck, strconv.Itoa(drive), path), nil
}

func EjectFloppy(drive int) (Command, error) {
	if err := checkDrive(drive); err != nil {
		return Command{}, err
	}
	return command("EJECT_FLOPPY", ShapeAck, strconv.Itoa(drive)), nil
}

func ListFloppies() Command { return command("LIST_FLOPPIES", ShapeFloppyList) }

func InsertCD(path string) (Command, error) {
	if err := checkPath("path", path); err != nil {
		return Command{}, err
	}
	return command("INSERT_CD", ShapeAck, path), nil
}

func EjectCD() Command { return command("EJECT_CD", ShapeAck) }

// DiskSwap moves an entry from the disk swapper list into a drive.
func DiskSwap(index, drive int) (Command, error) {
	if index < 0 {
		return Command{}, validationErr("index", "must not be negative, got %d", index)
	}
	if err := checkDrive(drive); err != nil {
		return Command{}, err
	}
	return command("DISK_SWAP", ShapeAck, strconv.Itoa(index), strconv.Itoa(drive)), nil
}

// QueryDiskSwap reports which swapper entry occupies a drive, -1 for none.
func QueryDiskSwap(drive int) (Command, error) {
	if err := checkDrive(drive); err != nil {
		return Command{}, err
	}
	return command("QUERY_DISK_SWAP", ShapeScalar, strconv.Itoa(drive)), nil
}

// State management.

func SaveState(statePath, configPath string) (Command, error) {
	if err := checkPath("state path", statePath); err != nil {
		return Command{}, err
	}
	if err := checkPath("config path", configPath); err != nil {
		return Command{}, err
	}
	return command("SAVE_STATE", ShapeAck, statePath, configPath), nil
}

func LoadState(statePath string) (Command, error) {
	if err := checkPath("state path", statePath); err != nil {
		return Command{}, err
	}
	return command("LOAD_STATE", ShapeAck, statePath), nil
}

func QuickSave(slot int) (Command, error) {
	if err := checkSlot(slot); err != nil {
		return Command{}, err
	}
	return command("QUICK_SAVE", ShapeAck, strconv.Itoa(slot)), nil
}

func QuickLoad(slot int) (Command, error) {
	if err := checkSlot(slot); err != nil {
		return Command{}, err
	}
	return command("QUICK_LOAD", ShapeAck, strconv.Itoa(slot)), nil
}

// Audio and display.

func SetVolume(volume int) (Command, error) {
	if volume < 0 || volume > 100 {
		return Command{}, validationErr("volume", "must be within 0-100, got %d", volume)
	}
	return command("SET_VOLUME", ShapeAck, strconv.Itoa(volume)), nil
}

func GetVolume() Command { return command("GET_VOLUME", ShapeScalar) }

func SetMuted(muted bool) Command {
	return command("SET_MUTE", ShapeAck, formatBool(muted))
}

func SetFullscreen(on bool) Command {
	return command("SET_FULLSCREEN", ShapeAck, formatBool(on))
}

func SetWarp(on bool) Command {
	return command("SET_WARP", ShapeAck, formatBool(on))
}

func SetLineDoubling(on bool) Command {
	return command("SET_LINE_DOUBLING", ShapeAck, formatBool(on))
}

// Input injection.

// SendKey injects one Amiga keycode transition.
func SendKey(code int, pressed bool) (Command, error) {
	if code < 0 || code > 255 {
		return Command{}, validationErr("keycode", "must be within 0-255, got %d", code)
	}
	return command("SEND_KEY", ShapeAck, strconv.Itoa(code), formatBool(pressed)), nil
}

// SendJoy sets the joystick state bitmask for a port.
func SendJoy(port, state int) (Command, error) {
	if port < 0 || port > 1 {
		return Command{}, validationErr("port", "must be 0 or 1, got %d", port)
	}
	if state < 0 || state > 0xff {
		return Command{}, validationErr("state", "must be within 0-255, got %d", state)
	}
	return command("SEND_JOY", ShapeAck, strconv.Itoa(port), strconv.Itoa(state)), nil
}

// SendMouse injects a relative mouse movement with a button bitmask.
func SendMouse(dx, dy, buttons int) (Command, error) {
	if dx < -32768 || dx > 32767 {
		return Command{}, validationErr("dx", "must fit a signed 16-bit value, got %d", dx)
	}
	if dy < -32768 || dy > 32767 {
		return Command{}, validationErr("dy", "must fit a signed 16-bit value, got %d", dy)
	}
	if buttons < 0 || buttons > 7 {
		return Command{}, validationErr("buttons", "must be within 0-7, got %d", buttons)
	}
	return command("SEND_MOUSE", ShapeAck, strconv.Itoa(dx), strconv.Itoa(dy), strconv.Itoa(buttons)), nil
}

// Emulator-side configuration options. Keys and values are untyped
// pass-through; the emulator owns their validation.

func GetOption(key string) (Command, error) {
	if err := checkToken("option key", key); err != nil {
		return Command{}, err
	}
	return command("GET_CONFIG", ShapeScalar, key), nil
}

func SetOption(key, value string) (Command, error) {
	if err := checkToken("option key", key); err != nil {
		return Command{}, err
	}
	if err := checkValue("option value", value); err != nil {
		return Command{}, err
	}
	return command("SET_CONFIG", ShapeAck, key, value), nil
}

func LoadConfig(path string) (Command, error) {
	if err := checkPath("config path", path); err != nil {
		return Command{}, err
	}
	return command("LOAD_CONFIG", ShapeAck, path), nil
}

// Debugger.

func DebugActivate() Command   { return command("DEBUG_ACTIVATE", ShapeDebugState) }
func DebugDeactivate() Command { return command("DEBUG_DEACTIVATE", ShapeAck) }
func DebugStep() Command       { return command("DEBUG_STEP", ShapeDebugState) }
func DebugStepOver() Command   { return command("DEBUG_STEP_OVER", ShapeDebugState) }
func DebugContinue() Command   { return command("DEBUG_CONTINUE", ShapeAck) }
func DebugRegisters() Command  { return command("DEBUG_REGS", ShapeRegisters) }

// Chip-internal state introspection.

func CopperState() Command  { return command("DEBUG_COPPER", ShapeFields) }
func BlitterState() Command { return command("DEBUG_BLITTER", ShapeFields) }
func DMAState() Command     { return command("DEBUG_DMA", ShapeFields) }
func AudioState() Command   { return command("DEBUG_AUDIO", ShapeFields) }

// ReadMemory reads width bytes at addr.
func ReadMemory(addr uint32, width int) (Command, error) {
	if err := checkWidth(width); err != nil {
		return Command{}, err
	}
	return command("READ_MEM", ShapeScalar, formatAddress(addr), strconv.Itoa(width)), nil
}

// WriteMemory writes a width-sized value at addr. The value must fit the
// declared width.
func WriteMemory(addr uint32, width int, value uint32) (Command, error) {
	if err := checkWidth(width); err != nil {
		return Command{}, err
	}
	if max := widthMax(width); uint64(value) > max {
		return Command{}, validationErr("value", "0x%x does not fit width %d", value, width)
	}
	return command("WRITE_MEM", ShapeAck,
		formatAddress(addr), strconv.Itoa(width), fmt.Sprintf("0x%x", value)), nil
}

// ReadMemoryBlock reads length raw bytes at addr, returned as a binary
// payload.
func ReadMemoryBlock(addr uint32, length int) (Command, error) {
	if length < 1 || length > maxBlockRead {
		return Command{}, validationErr("length", "must be within 1-%d, got %d", maxBlockRead, length)
	}
	return command("READ_MEM_BLOCK", ShapeBlob, formatAddress(addr), strconv.Itoa(length)), nil
}

func SetBreakpoint(addr uint32) Command {
	return command("SET_BREAKPOINT", ShapeAck, formatAddress(addr))
}

func ClearBreakpoint(addr uint32) Command {
	return command("CLEAR_BREAKPOINT", ShapeAck, formatAddress(addr))
}

func ListBreakpoints() Command { return command("LIST_BREAKPOINTS", ShapeBreakpointList) }

// maxBlockRead bounds READ_MEM_BLOCK to one chip-RAM bank.
const maxBlockRead = 1 << 20

func widthMax(width int) uint64 {
	return 1<<(8*uint(width)) - 1
}

func checkWidth(width int) error {
	switch width {
	case 1, 2, 4:
		return nil
	default:
		return validationErr("width", "must be 1, 2, or 4, got %d", width)
	}
}

func checkDrive(drive int) error {
	if drive < 0 || drive > 3 {
		return validationErr("drive", "must be within 0-3, got %d", drive)
	}
	return nil
}

func checkSlot(slot int) error {
	if slot < 0 || slot > 9 {
		return validationErr("slot", "must be within 0-9, got %d", slot)
	}
	return nil
}

// checkPath rejects empty paths and paths that would break wire framing.
func checkPath(param, path string) error {
	if strings.TrimSpace(path) == "" {
		return validationErr(param, "must not be empty")
	}
	return checkValue(param, path)
}

// checkToken rejects empty tokens after trimming.
func checkToken(param, s string) error {
	if strings.TrimSpace(s) == "" {
		return validationErr(param, "must not be empty")
	}
	return checkValue(param, s)
}

// checkValue rejects values containing the wire separator or terminator.
func checkValue(param, s string) error {
	if strings.ContainsAny(s, Separator+Terminator+"\r") {
		return validationErr(param, "must not contain tab or newline characters")
	}
	return nil
}
