//go:build !windows

package command

import (
	"os"
	"os/exec"
	"syscall"
)

// setPlatformProcessGroup puts the child in its own process group so an
// interrupt can reach the whole tree the command spawned.
func setPlatformProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// interruptProcessGroup sends SIGINT to the child's process group, giving it
// a chance to exit cleanly before the wait delay kills it.
func interruptProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}

	pgid, err := syscall.Getpgid(cmd.Process.Pid)
	if err != nil {
		return cmd.Process.Signal(syscall.SIGINT)
	}

	return syscall.Kill(-pgid, syscall.SIGINT)
}

// exitStatus maps a finished process state to a shell-style exit code,
// using the 128+signal convention for signal deaths.
func exitStatus(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}
