//go:build windows

package command

import (
	"os"
	"os/exec"
)

// setPlatformProcessGroup is a no-op on Windows; the child is managed as a
// single process.
func setPlatformProcessGroup(_ *exec.Cmd) {}

// interruptProcessGroup terminates the child. Windows has no SIGINT
// delivery for non-console processes, so termination is the best available
// interrupt.
func interruptProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

func exitStatus(state *os.ProcessState) int {
	return state.ExitCode()
}
