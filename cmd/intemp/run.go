package main

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/intemp/internal/config"
	intio "github.com/satococoa/intemp/internal/io"
	"github.com/satococoa/intemp/internal/run"
)

// runGetwd is swapped out in tests.
var runGetwd = os.Getwd

func runCommand(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}

	code, err := runCommandWithOrchestrator(ctx, cmd, w, run.New())
	if err != nil {
		return err
	}
	if code != 0 {
		return cli.Exit("", code)
	}
	return nil
}

func runCommandWithOrchestrator(ctx context.Context, cmd *cli.Command, w io.Writer, o *run.Orchestrator) (int, error) {
	cwd, err := runGetwd()
	if err != nil {
		return 0, err
	}

	cfg, err := config.Resolve(config.Inputs{
		Command:         commandArgs(cmd.Args().Slice()),
		TempDir:         cmd.String("temp-dir"),
		TargetDir:       cmd.String("target-dir"),
		PreserveTempDir: cmd.String("preserve-temp-dir"),
		Overwrite:       cmd.Bool("overwrite"),
		OverwriteSet:    cmd.IsSet("overwrite"),
		Quiet:           cmd.Bool("quiet"),
		QuietSet:        cmd.IsSet("quiet"),
		StdinFile:       cmd.String("stdin-file"),
		StdoutFile:      cmd.String("stdout-file"),
		StderrFile:      cmd.String("stderr-file"),
	}, cwd)
	if err != nil {
		return 0, err
	}

	return o.Run(ctx, intio.NewFlushingWriter(w), cfg), nil
}

// commandArgs strips the conventional double-dash separator in front of the
// command.
func commandArgs(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}
