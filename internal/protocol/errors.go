package protocol

import "fmt"

// ValidationError reports a parameter rejected before any I/O happened.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// CommandRejected reports a well-formed ERROR response from the emulator,
// preserving its message text verbatim.
type CommandRejected struct {
	Keyword string
	Message string
}

func (e *CommandRejected) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s rejected by emulator", e.Keyword)
	}
	return fmt.Sprintf("%s rejected by emulator: %s", e.Keyword, e.Message)
}

// ProtocolError reports a malformed, truncated, or shape-mismatched response.
// Partial decoding is never attempted; a ProtocolError carries no result data.
type ProtocolError struct {
	Keyword string
	Reason  string
}

func (e *ProtocolError) Error() string {
	if e.Keyword == "" {
		return "protocol error: " + e.Reason
	}
	return fmt.Sprintf("protocol error in %s response: %s", e.Keyword, e.Reason)
}

func validationErr(param, format string, args ...any) error {
	return &ValidationError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

func protocolErr(keyword, format string, args ...any) error {
	return &ProtocolError{Keyword: keyword, Reason: fmt.Sprintf(format, args...)}
}
