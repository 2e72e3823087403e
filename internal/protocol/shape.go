package protocol

// Shape tags the response structure expected for a command. The decoder
// dispatches on it; the transport derives framing from it.
type Shape int

const (
	// ShapeAck expects a bare OK with no payload of interest.
	ShapeAck Shape = iota
	// ShapeScalar expects a single payload token.
	ShapeScalar
	// ShapeFields expects one line of key=value tokens.
	ShapeFields
	// ShapeRegisters expects the full 68k register dump.
	ShapeRegisters
	// ShapeDebugState expects the debugger activation record (PC=...).
	ShapeDebugState
	// ShapeFloppyList expects a counted block of drive lines.
	ShapeFloppyList
	// ShapeBreakpointList expects a counted block of breakpoint lines.
	ShapeBreakpointList
	// ShapeBlob expects a length-prefixed raw byte payload.
	ShapeBlob
)

// Framing maps the shape to its transport read strategy.
func (s Shape) Framing() Framing {
	switch s {
	case ShapeFloppyList, ShapeBreakpointList:
		return FrameLines
	case ShapeBlob:
		return FrameBlob
	default:
		return FrameLine
	}
}
