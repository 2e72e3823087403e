// Package doctor runs runtime readiness diagnostics for config, the Amiberry
// binary, the control socket, and the data tree.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/config"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/ipc"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/romdb"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes environment/config/runtime checks for a loaded config.
func Run(ctx context.Context, cfg config.Loaded) Report {
	checks := []Check{}

	checks = append(checks, Check{
		Name:    "config",
		Pass:    true,
		Message: fmt.Sprintf("loaded %q (%d warnings)", cfg.Path, len(cfg.Warnings)),
	})

	checks = append(checks, checkBinary("amiberry", "emulator binary"))
	checks = append(checks, checkSocket(ctx, cfg.Config))

	checks = append(checks, checkDir("configs", cfg.Config.Paths.Configs))
	checks = append(checks, checkDir("savestates", cfg.Config.Paths.Savestates))
	checks = append(checks, checkDir("screenshots", cfg.Config.Paths.Screenshots))
	checks = append(checks, checkDir("kickstarts", cfg.Config.Paths.Kickstarts))

	checks = append(checks, checkKickstarts(cfg.Config.Paths.Kickstarts))

	return Report{Checks: checks}
}

// checkBinary validates that a binary exists in PATH.
func checkBinary(bin string, okMsg string) Check {
	path, err := exec.LookPath(bin)
	if err != nil {
		return Check{Name: bin, Pass: false, Message: fmt.Sprintf("binary not found in PATH: %s", bin)}
	}
	return Check{Name: bin, Pass: true, Message: fmt.Sprintf("found at %s (%s)", path, okMsg)}
}

// checkSocket probes the control socket for a live emulator.
func checkSocket(ctx context.Context, cfg config.Config) Check {
	path := ipc.SocketPath(cfg.Socket.Path)
	timeout := cfg.Socket.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	alive, diagnosis := ipc.Probe(ctx, path, timeout)
	if !alive {
		return Check{Name: "socket", Pass: false, Message: fmt.Sprintf("%s: %s", path, diagnosis)}
	}
	return Check{Name: "socket", Pass: true, Message: fmt.Sprintf("emulator answering at %s", path)}
}

// checkDir validates that a configured directory exists.
func checkDir(name, path string) Check {
	info, err := os.Stat(path)
	if err != nil {
		return Check{Name: "paths." + name, Pass: false, Message: fmt.Sprintf("missing directory %s", path)}
	}
	if !info.IsDir() {
		return Check{Name: "paths." + name, Pass: false, Message: fmt.Sprintf("%s is not a directory", path)}
	}
	return Check{Name: "paths." + name, Pass: true, Message: path}
}

// checkKickstarts scans the kickstart directory for identifiable ROMs.
func checkKickstarts(dir string) Check {
	roms, err := romdb.Scan(dir, true)
	if err != nil {
		return Check{Name: "kickstarts", Pass: false, Message: err.Error()}
	}

	identified := 0
	for _, rom := range roms {
		if rom.Identified {
			identified++
		}
	}
	if len(roms) == 0 {
		return Check{Name: "kickstarts", Pass: false, Message: "no ROM files found"}
	}
	return Check{
		Name:    "kickstarts",
		Pass:    true,
		Message: fmt.Sprintf("%d ROM files (%d identified)", len(roms), identified),
	}
}
