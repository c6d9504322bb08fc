// Package publish transfers the output of a finished run from the working
// directory into the target directory, guarding against name collisions.
//
// A failed transfer is not rolled back: entries published before the failure
// stay in the target directory, and the error is surfaced to the caller.
package publish

import (
	"os"
	"path/filepath"

	"github.com/satococoa/intemp/internal/errors"
)

// EnsureClear verifies that none of the named entries exist in dst. With
// del set, colliding entries are deleted instead; otherwise the first
// collision fails the call and no entry is removed. Broken symlinks count
// as existing.
func EnsureClear(dst string, names []string, del bool) error {
	for _, name := range names {
		destPath := filepath.Join(dst, name)

		info, err := os.Lstat(destPath)
		if err != nil {
			continue
		}

		if !del {
			return errors.DestinationExists(name, dst)
		}

		if info.IsDir() {
			if err := os.RemoveAll(destPath); err != nil {
				return err
			}
		} else {
			if err := os.Remove(destPath); err != nil {
				return err
			}
		}
	}

	return nil
}
