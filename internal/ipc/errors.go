package ipc

import (
	"errors"
	"net"
	"os"
	"syscall"
)

// ErrUnavailable reports that the control socket is missing or refused the
// connection; the emulator is most likely not running.
var ErrUnavailable = errors.New("emulator control socket unavailable")

// ErrTimeout reports that no response arrived within the call's deadline. The
// connection is torn down to avoid cross-talk between a late response and the
// next request.
var ErrTimeout = errors.New("emulator did not respond in time")

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isUnavailable(err error) bool {
	return errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENOENT)
}
