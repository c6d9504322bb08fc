// Package workspace manages the isolated working directory a command runs in:
// allocation under the temp root, and the keep-or-delete decision afterward.
package workspace

import (
	"os"

	"github.com/satococoa/intemp/internal/errors"
)

// Policy controls whether the working directory survives the run.
type Policy int

const (
	// PreserveOnFailure keeps the directory only when the run fails.
	PreserveOnFailure Policy = iota
	// PreserveAlways keeps the directory unconditionally.
	PreserveAlways
	// PreserveNever deletes the directory unconditionally.
	PreserveNever
)

const workspacePrefix = "intemp"

// ParsePolicy converts the CLI spelling into a Policy.
func ParsePolicy(value string) (Policy, error) {
	switch value {
	case "always":
		return PreserveAlways, nil
	case "never":
		return PreserveNever, nil
	case "failure":
		return PreserveOnFailure, nil
	default:
		return PreserveOnFailure, errors.InvalidPreservePolicy(value)
	}
}

func (p Policy) String() string {
	switch p {
	case PreserveAlways:
		return "always"
	case PreserveNever:
		return "never"
	default:
		return "failure"
	}
}

// Keep reports whether the working directory should survive, given the
// overall outcome of the run.
func (p Policy) Keep(succeeded bool) bool {
	if succeeded {
		return p == PreserveAlways
	}
	return p != PreserveNever
}

// Workspace is a uniquely named directory created fresh for one run.
type Workspace struct {
	Path string
}

// Create allocates an empty directory under tempRoot. Name uniqueness among
// concurrent callers is delegated to os.MkdirTemp.
func Create(tempRoot string) (*Workspace, error) {
	path, err := os.MkdirTemp(tempRoot, workspacePrefix)
	if err != nil {
		return nil, err
	}
	return &Workspace{Path: path}, nil
}

// Remove deletes the working directory and everything in it.
func (ws *Workspace) Remove() error {
	return os.RemoveAll(ws.Path)
}

// Exists reports whether the directory is still on disk. The command may
// legitimately have deleted its own working directory.
func (ws *Workspace) Exists() bool {
	info, err := os.Stat(ws.Path)
	return err == nil && info.IsDir()
}
