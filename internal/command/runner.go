package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// interruptExitCode follows the 128+SIGINT shell convention.
const interruptExitCode = 130

// waitDelay bounds how long an interrupted child may linger before it is
// killed outright.
const waitDelay = 10 * time.Second

// Runner executes commands in their working directory with the requested
// stream redirections.
type Runner struct {
	// Stdin is inherited by the child when no stdin file is configured.
	Stdin io.Reader
}

// NewRunner creates a runner that inherits the parent's stdin.
func NewRunner() *Runner {
	return &Runner{Stdin: os.Stdin}
}

// Run executes cmd with WorkDir as its working directory and waits for it.
// Child output goes to w unless redirected to a file. A context cancellation
// while waiting interrupts the child's process group and is reported as
// Result{Interrupted: true}, not as an error; errors are reserved for
// failures to set the command up at all.
func (r *Runner) Run(ctx context.Context, cmd Command, w io.Writer) (Result, error) {
	execCmd := exec.CommandContext(ctx, cmd.Name, cmd.Args...) // #nosec G204 - running caller-supplied commands is the tool's purpose
	execCmd.Dir = cmd.WorkDir
	execCmd.Stdin = r.Stdin
	execCmd.Stdout = w
	execCmd.Stderr = w

	setPlatformProcessGroup(execCmd)
	execCmd.Cancel = func() error { return interruptProcessGroup(execCmd) }
	execCmd.WaitDelay = waitDelay

	closers, err := r.wireRedirections(execCmd, cmd)
	if err != nil {
		closeAll(closers)
		return Result{}, err
	}
	defer closeAll(closers)

	runErr := execCmd.Run()

	if ctx.Err() != nil {
		return Result{ExitCode: interruptExitCode, Interrupted: true}, nil
	}

	if runErr == nil {
		return Result{ExitCode: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return Result{ExitCode: exitStatus(exitErr.ProcessState)}, nil
	}

	return Result{}, fmt.Errorf("failed to start command: %w", runErr)
}

// wireRedirections opens the configured redirection files and attaches them
// to the child's streams. Returned closers must be closed by the caller on
// every path.
func (r *Runner) wireRedirections(execCmd *exec.Cmd, cmd Command) ([]io.Closer, error) {
	var closers []io.Closer

	if cmd.StdinFile != "" {
		in, err := os.Open(cmd.StdinFile)
		if err != nil {
			return closers, fmt.Errorf("failed to open stdin file: %w", err)
		}
		closers = append(closers, in)
		execCmd.Stdin = in
	}

	stdoutPath := resolveOutputPath(cmd.StdoutFile, cmd.WorkDir)
	stderrPath := resolveOutputPath(cmd.StderrFile, cmd.WorkDir)

	if stdoutPath != "" {
		out, err := os.Create(stdoutPath)
		if err != nil {
			return closers, fmt.Errorf("failed to open stdout file: %w", err)
		}
		closers = append(closers, out)
		execCmd.Stdout = out

		// Identical stdout and stderr paths share one handle so the two
		// streams interleave instead of truncating each other.
		if stderrPath == stdoutPath {
			execCmd.Stderr = out
			return closers, nil
		}
	}

	if stderrPath != "" {
		errFile, err := os.Create(stderrPath)
		if err != nil {
			return closers, fmt.Errorf("failed to open stderr file: %w", err)
		}
		closers = append(closers, errFile)
		execCmd.Stderr = errFile
	}

	return closers, nil
}

// resolveOutputPath interprets a relative redirection target against the
// working directory, so redirected output lands in the workspace.
func resolveOutputPath(path, workDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}
