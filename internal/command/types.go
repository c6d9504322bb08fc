// Package command renders and executes the external command of a run.
package command

import "strings"

// Command represents the external command to be executed
type Command struct {
	Name    string   // Program name or path
	Args    []string // Program arguments
	WorkDir string   // Working directory the program runs in

	// Redirection targets. Empty means the stream is inherited from the
	// runner. Relative output paths are resolved against WorkDir.
	StdinFile  string
	StdoutFile string
	StderrFile string
}

// Argv returns the full argument vector, program name first.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	argv = append(argv, c.Args...)
	return argv
}

// Line renders the command as a shell-quoted string. It is used for log
// output only and never fed back to a shell.
func (c Command) Line() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, arg := range c.Argv() {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

// safeArgChars are the characters that need no quoting in a POSIX shell.
const safeArgChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_@%+=:,./-"

func quoteArg(arg string) string {
	if arg == "" {
		return "''"
	}

	safe := true
	for _, r := range arg {
		if !strings.ContainsRune(safeArgChars, r) {
			safe = false
			break
		}
	}
	if safe {
		return arg
	}

	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// Result represents the outcome of one command execution
type Result struct {
	ExitCode    int
	Interrupted bool
}

// Success reports whether the command completed normally with exit code 0.
func (r Result) Success() bool {
	return r.ExitCode == 0 && !r.Interrupted
}
