package main

import "github.com/urfave/cli/v3"

func newApp() *cli.Command {
	return &cli.Command{
		Name:      "intemp",
		Usage:     "Run a command in a temporary directory",
		UsageText: "intemp [options] -- <command> [args...]",
		Description: "Runs a command inside a fresh, uniquely named subdirectory of the temp dir. " +
			"If the command succeeds, everything it produced there is published into the target " +
			"directory (current directory by default). If the command fails, the target directory " +
			"is left untouched.\n\n" +
			"Since the command runs in the temporary directory, give input files as absolute paths. " +
			"Output files are best given as relative paths, so they land in the temporary directory " +
			"and are published from there.\n\n" +
			"Examples:\n" +
			"  intemp -- sh -c 'sort /abs/in.txt > out.txt'\n" +
			"  intemp -d ./results -p always -- make all\n" +
			"  intemp -o -O build.log -- ./generate.sh",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "temp-dir",
				Usage:   "Run the command in an empty subdirectory of `DIR` (must exist)",
				Aliases: []string{"t"},
			},
			&cli.StringFlag{
				Name:    "target-dir",
				Usage:   "Publish output files into `DIR` after success (must exist)",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:    "preserve-temp-dir",
				Usage:   "When to keep the working directory: always|never|failure",
				Aliases: []string{"p"},
			},
			&cli.BoolFlag{
				Name:    "overwrite",
				Usage:   "Overwrite entries in the target directory",
				Aliases: []string{"o"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Usage:   "Suppress progress output",
				Aliases: []string{"q"},
			},
			&cli.StringFlag{
				Name:    "stdin-file",
				Usage:   "Feed `FILE` to the command's standard input",
				Aliases: []string{"I"},
			},
			&cli.StringFlag{
				Name:    "stdout-file",
				Usage:   "Redirect standard output to `FILE` (relative to the working directory)",
				Aliases: []string{"O"},
			},
			&cli.StringFlag{
				Name:    "stderr-file",
				Usage:   "Redirect standard error to `FILE` (relative to the working directory)",
				Aliases: []string{"E"},
			},
		},
		Action: runCommand,
	}
}
