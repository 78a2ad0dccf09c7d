// Package launch wraps the two subprocess policies the dashboard uses:
// fire-and-forget spawns that are never awaited, and blocking commands
// handed to the TUI runtime to run while the terminal is released.
package launch

import "os/exec"

// Spawn starts a command detached from the dashboard and discards the
// handle. Start failures are ignored. The process is reaped in the
// background to avoid leaving zombies.
func Spawn(name string, args ...string) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return
	}
	go func() { _ = cmd.Wait() }()
}

// Blocking builds a command intended to be run to completion in a
// working directory while the caller owns the terminal, typically via
// tea.ExecProcess. Stdio wiring is left to the runner.
func Blocking(dir, name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd
}
