package lock

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestLock(t *testing.T, running func(int) (bool, error)) *Lock {
	t.Helper()
	l := New(filepath.Join(t.TempDir(), "keeper.lock"), zaptest.NewLogger(t))
	if running != nil {
		l.processRunning = running
	}
	return l
}

func writeOwner(t *testing.T, path string, pid int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(pid)), 0o644))
}

func TestAcquireRelease(t *testing.T) {
	l := newTestLock(t, nil)

	require.NoError(t, l.Acquire())
	data, err := os.ReadFile(l.path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))

	// Re-entrant for the same process.
	require.NoError(t, l.Acquire())

	require.NoError(t, l.Release())
	assert.NoFileExists(t, l.path)

	// Releasing twice is harmless.
	assert.NoError(t, l.Release())
}

func TestAcquire_HeldByLiveProcess(t *testing.T) {
	l := newTestLock(t, func(pid int) (bool, error) { return pid == 4242, nil })
	writeOwner(t, l.path, 4242)

	err := l.Acquire()
	assert.ErrorIs(t, err, ErrLocked)
	assert.FileExists(t, l.path)
}

func TestAcquire_TakesOverStaleLock(t *testing.T) {
	l := newTestLock(t, func(int) (bool, error) { return false, nil })
	writeOwner(t, l.path, 4242)

	require.NoError(t, l.Acquire())
	data, err := os.ReadFile(l.path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))
}

func TestAcquire_TakesOverGarbageLock(t *testing.T) {
	l := newTestLock(t, func(int) (bool, error) {
		t.Fatal("owner of an unreadable lock must not be looked up")
		return false, nil
	})
	require.NoError(t, os.WriteFile(l.path, []byte("not a pid"), 0o644))

	assert.NoError(t, l.Acquire())
}

func TestRelease_LeavesForeignLock(t *testing.T) {
	l := newTestLock(t, nil)
	writeOwner(t, l.path, os.Getpid()+1)

	require.NoError(t, l.Release())
	assert.FileExists(t, l.path)
}

func TestIsProcessRunning_Self(t *testing.T) {
	running, err := IsProcessRunning(os.Getpid())
	if err != nil {
		t.Skipf("process table unavailable: %v", err)
	}
	assert.True(t, running)
}
