package ipc

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// Diagnosis classifies why a probe found the control channel unusable.
// Callers use it to pick user-facing messaging, not to branch on recovery.
type Diagnosis int

const (
	DiagnosisOK Diagnosis = iota
	DiagnosisSocketMissing
	DiagnosisRefused
	DiagnosisTimeout
	DiagnosisProtocolMismatch
)

func (d Diagnosis) String() string {
	switch d {
	case DiagnosisOK:
		return "ok"
	case DiagnosisSocketMissing:
		return "control socket does not exist"
	case DiagnosisRefused:
		return "connection refused"
	case DiagnosisTimeout:
		return "no response within timeout"
	case DiagnosisProtocolMismatch:
		return "unexpected protocol response"
	default:
		return "unknown"
	}
}

// Probe performs one short PING round trip on its own throwaway connection.
// It never fails for "not available": the boolean reports liveness and the
// diagnosis says why it is not alive.
func Probe(ctx context.Context, path string, timeout time.Duration) (bool, Diagnosis) {
	transport := NewTransport(path)
	defer transport.Close()

	cmd := protocol.Ping()
	raw, err := transport.RoundTrip(ctx, cmd.Encode(), timeout, cmd.Shape.Framing())
	if err != nil {
		switch {
		case errors.Is(err, ErrTimeout):
			return false, DiagnosisTimeout
		case errors.Is(err, ErrUnavailable):
			if _, statErr := os.Stat(path); statErr != nil {
				return false, DiagnosisSocketMissing
			}
			return false, DiagnosisRefused
		default:
			return false, DiagnosisProtocolMismatch
		}
	}

	pong, err := protocol.DecodeScalar(cmd, raw)
	if err != nil || pong != "PONG" {
		return false, DiagnosisProtocolMismatch
	}
	return true, DiagnosisOK
}
