// Package run sequences one invocation end to end: provision the workspace,
// execute the command, publish its output on success, then apply the
// retention policy.
package run

import (
	"context"
	"fmt"
	"io"

	"github.com/satococoa/intemp/internal/command"
	"github.com/satococoa/intemp/internal/config"
	"github.com/satococoa/intemp/internal/publish"
	"github.com/satococoa/intemp/internal/workspace"
)

// generalFailureCode reports runs where the command itself passed but the
// run as a whole did not (publish failure, setup failure).
const generalFailureCode = 1

// CommandRunner abstracts process execution for testing.
type CommandRunner interface {
	Run(ctx context.Context, cmd command.Command, w io.Writer) (command.Result, error)
}

// Orchestrator drives one run. The fields are swappable in tests; New wires
// the real implementations.
type Orchestrator struct {
	Runner          CommandRunner
	CreateWorkspace func(tempRoot string) (*workspace.Workspace, error)
	Sync            func(w io.Writer, src, dst string, opts publish.Options) error
}

// New creates an orchestrator backed by the real runner, workspace
// allocation and publisher.
func New() *Orchestrator {
	return &Orchestrator{
		Runner:          command.NewRunner(),
		CreateWorkspace: workspace.Create,
		Sync:            publish.Sync,
	}
}

// Run executes one configuration and returns the process exit code: the
// command's own code when it is the determining failure, 0 on full success,
// 1 when the command passed but publishing failed.
func (o *Orchestrator) Run(ctx context.Context, w io.Writer, cfg *config.Config) int {
	ws, err := o.CreateWorkspace(cfg.TempRoot)
	if err != nil {
		fmt.Fprintf(w, "failed to create working directory: %v\n", err)
		return generalFailureCode
	}

	cmd := command.Command{
		Name:       cfg.Command[0],
		Args:       cfg.Command[1:],
		WorkDir:    ws.Path,
		StdinFile:  cfg.StdinFile,
		StdoutFile: cfg.StdoutFile,
		StderrFile: cfg.StderrFile,
	}

	if !cfg.Quiet {
		fmt.Fprintf(w, "Running in %s\n", ws.Path)
		fmt.Fprintf(w, "Command: %s\n", cmd.Line())
	}

	result, runErr := o.Runner.Run(ctx, cmd, w)
	if runErr != nil && !cfg.Quiet {
		fmt.Fprintf(w, "%v\n", runErr)
	}
	succeeded := runErr == nil && result.Success()

	switch {
	case succeeded:
		if !cfg.Quiet {
			fmt.Fprintln(w, "Command was successful")
		}
		opts := publish.Options{
			Mode:      publish.ModeForPolicy(cfg.Preserve),
			Overwrite: cfg.Overwrite,
			Quiet:     cfg.Quiet,
		}
		if syncErr := o.Sync(w, ws.Path, cfg.TargetDir, opts); syncErr != nil {
			// The command ran fine but its output never reached the target:
			// the run as a whole failed.
			succeeded = false
			if !cfg.Quiet {
				fmt.Fprintf(w, "%v\n", syncErr)
				fmt.Fprintln(w, "Failed to copy result files to target dir")
			}
		}
	case result.Interrupted:
		if !cfg.Quiet {
			fmt.Fprintln(w, "Command interrupted")
		}
	default:
		if !cfg.Quiet {
			fmt.Fprintln(w, "Command failed")
		}
	}

	o.finalize(w, ws, cfg, succeeded)

	if result.ExitCode != 0 {
		return result.ExitCode
	}
	if succeeded {
		return 0
	}
	return generalFailureCode
}

// finalize applies the retention policy to the workspace. The command may
// have removed its own working directory; that is not an error.
func (o *Orchestrator) finalize(w io.Writer, ws *workspace.Workspace, cfg *config.Config, succeeded bool) {
	if !ws.Exists() {
		return
	}

	keep := cfg.Preserve.Keep(succeeded)

	if !cfg.Quiet {
		verb := "Deleting"
		if keep {
			verb = "Preserving"
		}
		adjective := "failed"
		if succeeded {
			adjective = "successful"
		}
		fmt.Fprintf(w, "%s working directory of %s run in %s\n", verb, adjective, ws.Path)
	}

	if !keep {
		if err := ws.Remove(); err != nil && !cfg.Quiet {
			fmt.Fprintf(w, "failed to delete working directory: %v\n", err)
		}
	}
}
