// Package protocol encodes typed commands into Amiberry IPC wire requests and
// decodes wire responses into typed results. Encoding validates every
// parameter before any I/O; decoding is pure and never returns partial data.
package protocol

// Wire grammar: `KEYWORD<TAB>param...<LF>` out, `OK[<TAB>payload...]<LF>` or
// `ERROR<TAB>message<LF>` back. TAB is the token separator so image paths
// containing blanks survive framing.
const (
	Separator  = "\t"
	Terminator = "\n"

	StatusOK    = "OK"
	StatusError = "ERROR"
)

// Framing tells the transport how much of the stream belongs to one response.
type Framing int

const (
	// FrameLine is a single newline-terminated status line.
	FrameLine Framing = iota
	// FrameLines is a status line carrying a line count, then that many
	// payload lines.
	FrameLines
	// FrameBlob is a status line carrying a byte length, then that many raw
	// bytes.
	FrameBlob
)

// RawResponse is one framed wire response before decoding. Line holds the
// status line with its terminator stripped; Lines and Blob hold the extra
// payload for FrameLines and FrameBlob responses.
type RawResponse struct {
	Line  string
	Lines []string
	Blob  []byte
}
