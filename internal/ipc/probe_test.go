package ipc

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProbeAlive(t *testing.T) {
	stub := newStubEmulator(t, echoPong)

	alive, diagnosis := Probe(context.Background(), stub.path, time.Second)
	require.True(t, alive)
	require.Equal(t, DiagnosisOK, diagnosis)
}

func TestProbeSocketMissing(t *testing.T) {
	alive, diagnosis := Probe(context.Background(), filepath.Join(t.TempDir(), "nope.sock"), time.Second)
	require.False(t, alive)
	require.Equal(t, DiagnosisSocketMissing, diagnosis)
}

func TestProbeTimeout(t *testing.T) {
	stub := newStubEmulator(t, func(string) string { return "" })

	alive, diagnosis := Probe(context.Background(), stub.path, 50*time.Millisecond)
	require.False(t, alive)
	require.Equal(t, DiagnosisTimeout, diagnosis)
}

func TestProbeProtocolMismatch(t *testing.T) {
	stub := newStubEmulator(t, func(string) string { return "HELLO WORLD\n" })

	alive, diagnosis := Probe(context.Background(), stub.path, time.Second)
	require.False(t, alive)
	require.Equal(t, DiagnosisProtocolMismatch, diagnosis)
}

func TestSocketPathOverrideWins(t *testing.T) {
	require.Equal(t, "/custom/path.sock", SocketPath(" /custom/path.sock "))
}

func TestSocketPathRuntimeDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)

	// Without an existing socket the resolver falls back to /tmp.
	require.Equal(t, fallbackSocketPath, SocketPath(""))

	path := filepath.Join(dir, socketName)
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	require.Equal(t, path, SocketPath(""))
}
