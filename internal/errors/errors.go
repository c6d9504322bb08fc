package errors

import (
	"errors"
	"fmt"
)

// Error kinds. Callers branch on these with errors.Is; the constructors
// below attach the user-facing context.
var (
	ErrNotADirectory     = errors.New("not a directory")
	ErrDestinationExists = errors.New("destination entry already exists")
	ErrCommandRequired   = errors.New("command is required")
	ErrInvalidPolicy     = errors.New("invalid preserve policy")
)

// Configuration Errors

func NotADirectory(original, resolved string) error {
	location := original
	if resolved != original {
		location = fmt.Sprintf("%s -> %s", original, resolved)
	}

	return fmt.Errorf(`%w: %s

Solutions:
  • Check the path for typos
  • Create the directory first with 'mkdir -p'
  • Make sure the path does not point to a regular file`, ErrNotADirectory, location)
}

func CommandRequired() error {
	return fmt.Errorf(`%w

Usage: intemp [options] -- <command> [args...]

Examples:
  • intemp -- make all
  • intemp -d ./results -- sh -c 'sort /abs/in.txt > out.txt'

Tip: Put the command after a double dash so its flags are not parsed as intemp's`, ErrCommandRequired)
}

func InvalidPreservePolicy(value string) error {
	return fmt.Errorf(`%w: '%s'

Valid values:
  • always  - keep the working directory even on success
  • never   - always delete the working directory
  • failure - keep the working directory only when the run fails (default)`, ErrInvalidPolicy, value)
}

// Publish Errors

func DestinationExists(name, dst string) error {
	return fmt.Errorf(`%w: '%s' in %s

Solutions:
  • Pass --overwrite to replace entries in the target directory
  • Remove the conflicting entry manually
  • Publish into a different --target-dir`, ErrDestinationExists, name, dst)
}

func TransferFailed(name, dst string, cause error) error {
	return fmt.Errorf("failed to copy '%s' to %s: %w", name, dst, cause)
}
