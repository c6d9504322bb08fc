package publish

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/satococoa/intemp/internal/errors"
	"github.com/satococoa/intemp/internal/workspace"
)

// Mode selects how entries travel from the working directory to the target.
type Mode int

const (
	// Move renames entries into the target. Cheaper, but the working
	// directory no longer contains them afterward.
	Move Mode = iota
	// Copy leaves the working directory intact.
	Copy
)

// ModeForPolicy couples the transfer mode to the retention policy: a
// workspace preserved unconditionally must still contain its output, so
// entries are copied; in every other case the workspace is disposable and
// entries are moved.
func ModeForPolicy(policy workspace.Policy) Mode {
	if policy == workspace.PreserveAlways {
		return Copy
	}
	return Move
}

// Options control one Sync call.
type Options struct {
	Mode      Mode
	Overwrite bool
	Quiet     bool
}

// Sync transfers every top-level entry of src into dst. The destination is
// cleared first via EnsureClear (deleting collisions only when Overwrite is
// set). Entries are processed in listing order; the first failure aborts the
// call and earlier transfers stay in place.
func Sync(w io.Writer, src, dst string, opts Options) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read working directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	if err := EnsureClear(dst, names, opts.Overwrite); err != nil {
		return err
	}

	for _, name := range names {
		srcPath := filepath.Join(src, name)
		dstPath := filepath.Join(dst, name)

		if opts.Mode == Move {
			if !opts.Quiet {
				fmt.Fprintf(w, "Move %s to %s\n", name, dst)
			}
			if err := moveEntry(srcPath, dstPath); err != nil {
				return errors.TransferFailed(name, dst, err)
			}
			continue
		}

		// Stat, not Lstat: symlink targets are what gets copied.
		info, err := os.Stat(srcPath)
		if err != nil {
			return errors.TransferFailed(name, dst, err)
		}

		switch {
		case info.IsDir():
			if !opts.Quiet {
				fmt.Fprintf(w, "Copy dir %s to %s\n", name, dst)
			}
			if err := copyDir(srcPath, dstPath); err != nil {
				return errors.TransferFailed(name, dst, err)
			}
		default:
			if !opts.Quiet {
				fmt.Fprintf(w, "Copy %s to %s\n", name, dst)
			}
			if err := copyFile(srcPath, dstPath); err != nil {
				return errors.TransferFailed(name, dst, err)
			}
		}
	}

	return nil
}
