package publish

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satococoa/intemp/internal/errors"
	"github.com/satococoa/intemp/internal/testutil"
	"github.com/satococoa/intemp/internal/workspace"
)

func TestModeForPolicy(t *testing.T) {
	assert.Equal(t, Copy, ModeForPolicy(workspace.PreserveAlways))
	assert.Equal(t, Move, ModeForPolicy(workspace.PreserveNever))
	assert.Equal(t, Move, ModeForPolicy(workspace.PreserveOnFailure))
}

func TestSync_MoveTransfersEverything(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	testutil.WriteFile(t, src, "out.txt", "result")
	testutil.WriteFile(t, src, filepath.Join("logs", "run.log"), "log line")

	var buf bytes.Buffer
	err := Sync(&buf, src, dst, Options{Mode: Move})
	require.NoError(t, err)

	assert.Equal(t, "result", testutil.ReadFile(t, filepath.Join(dst, "out.txt")))
	assert.Equal(t, "log line", testutil.ReadFile(t, filepath.Join(dst, "logs", "run.log")))
	assert.Empty(t, testutil.EntryNames(t, src), "moved entries leave the source")
	assert.Contains(t, buf.String(), "Move out.txt to "+dst)
	assert.Contains(t, buf.String(), "Move logs to "+dst)
}

func TestSync_CopyLeavesSourceIntact(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	testutil.WriteFile(t, src, "out.txt", "result")
	testutil.WriteFile(t, src, filepath.Join("logs", "run.log"), "log line")

	var buf bytes.Buffer
	err := Sync(&buf, src, dst, Options{Mode: Copy})
	require.NoError(t, err)

	assert.Equal(t, "result", testutil.ReadFile(t, filepath.Join(dst, "out.txt")))
	assert.Equal(t, "log line", testutil.ReadFile(t, filepath.Join(dst, "logs", "run.log")))
	assert.ElementsMatch(t, []string{"out.txt", "logs"}, testutil.EntryNames(t, src))
	assert.Contains(t, buf.String(), "Copy out.txt to "+dst)
	assert.Contains(t, buf.String(), "Copy dir logs to "+dst)
}

// Published content must not depend on the transfer mode.
func TestSync_ContentIdenticalAcrossModes(t *testing.T) {
	for _, mode := range []Mode{Move, Copy} {
		name := "move"
		if mode == Copy {
			name = "copy"
		}
		t.Run(name, func(t *testing.T) {
			src := t.TempDir()
			dst := t.TempDir()
			testutil.WriteFile(t, src, "out.txt", "identical payload")

			require.NoError(t, Sync(io.Discard, src, dst, Options{Mode: mode, Quiet: true}))
			assert.Equal(t, "identical payload", testutil.ReadFile(t, filepath.Join(dst, "out.txt")))
		})
	}
}

func TestSync_CopyPreservesMetadata(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	path := testutil.WriteFile(t, src, "out.bin", "0123456789")
	require.NoError(t, os.Chmod(path, 0o640))

	srcInfo, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, Sync(io.Discard, src, dst, Options{Mode: Copy, Quiet: true}))

	dstInfo, err := os.Stat(filepath.Join(dst, "out.bin"))
	require.NoError(t, err)
	assert.Equal(t, srcInfo.Size(), dstInfo.Size())
	assert.Equal(t, srcInfo.Mode(), dstInfo.Mode())
	assert.WithinDuration(t, srcInfo.ModTime(), dstInfo.ModTime(), 0)
}

func TestSync_CollisionFailsBeforeAnyTransfer(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	testutil.WriteFile(t, src, "out.txt", "new")
	testutil.WriteFile(t, dst, "out.txt", "original")

	err := Sync(io.Discard, src, dst, Options{Mode: Move})

	require.ErrorIs(t, err, errors.ErrDestinationExists)
	assert.Equal(t, "original", testutil.ReadFile(t, filepath.Join(dst, "out.txt")))
	assert.Equal(t, "new", testutil.ReadFile(t, filepath.Join(src, "out.txt")))
}

func TestSync_OverwriteReplacesCollision(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	testutil.WriteFile(t, src, "out.txt", "new")
	testutil.WriteFile(t, dst, "out.txt", "original")

	err := Sync(io.Discard, src, dst, Options{Mode: Move, Overwrite: true})

	require.NoError(t, err)
	assert.Equal(t, "new", testutil.ReadFile(t, filepath.Join(dst, "out.txt")))
}

func TestSync_OverwriteReplacesDirectoryCollision(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	testutil.WriteFile(t, src, filepath.Join("results", "new.txt"), "new")
	testutil.WriteFile(t, dst, filepath.Join("results", "stale.txt"), "stale")

	require.NoError(t, Sync(io.Discard, src, dst, Options{Mode: Copy, Overwrite: true}))

	assert.Equal(t, "new", testutil.ReadFile(t, filepath.Join(dst, "results", "new.txt")))
	assert.NoFileExists(t, filepath.Join(dst, "results", "stale.txt"))
}

func TestSync_SymlinkedDirIsMaterialized(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	external := t.TempDir()
	testutil.WriteFile(t, external, "data.txt", "payload")
	require.NoError(t, os.Symlink(external, filepath.Join(src, "linkdir")))

	require.NoError(t, Sync(io.Discard, src, dst, Options{Mode: Copy, Quiet: true}))

	materialized := filepath.Join(dst, "linkdir")
	info, err := os.Lstat(materialized)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "symlink target should be copied as a real directory")
	assert.Equal(t, "payload", testutil.ReadFile(t, filepath.Join(materialized, "data.txt")))
}

func TestSync_QuietSuppressesProgress(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	testutil.WriteFile(t, src, "out.txt", "x")

	var out bytes.Buffer
	require.NoError(t, Sync(&out, src, dst, Options{Mode: Move, Quiet: true}))
	assert.Empty(t, out.String())
}

func TestSync_EmptySourceIsANoOp(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	testutil.WriteFile(t, dst, "existing.txt", "keep")

	var out bytes.Buffer
	require.NoError(t, Sync(&out, src, dst, Options{Mode: Move}))

	assert.Equal(t, []string{"existing.txt"}, testutil.EntryNames(t, dst))
	assert.Empty(t, out.String())
}

// A mid-sync failure leaves earlier transfers in place: there is no rollback.
func TestSync_PartialFailureKeepsEarlierTransfers(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	testutil.WriteFile(t, src, "a.txt", "first")
	// A dangling symlink cannot be copied (Stat fails), forcing an error on
	// the second entry.
	require.NoError(t, os.Symlink(filepath.Join(src, "missing"), filepath.Join(src, "b.txt")))

	err := Sync(io.Discard, src, dst, Options{Mode: Copy})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to copy 'b.txt'")
	assert.Equal(t, "first", testutil.ReadFile(t, filepath.Join(dst, "a.txt")))
}

