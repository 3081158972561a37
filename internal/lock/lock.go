// Package lock keeps a second keeper process from writing the same store.
package lock

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tklauser/ps"
	"go.uber.org/zap"
)

var ErrLocked = errors.New("store is locked by another process")

// Lock is an exclusive PID file. A lock whose owner is no longer running is
// considered stale and taken over.
type Lock struct {
	path   string
	pid    int
	logger *zap.Logger

	// processRunning is swapped in tests.
	processRunning func(pid int) (bool, error)
}

func New(path string, logger *zap.Logger) *Lock {
	return &Lock{
		path:           path,
		pid:            os.Getpid(),
		logger:         logger,
		processRunning: IsProcessRunning,
	}
}

// IsProcessRunning reports whether a process with pid is in the process table.
func IsProcessRunning(pid int) (bool, error) {
	runningProcesses, err := ps.Processes()
	if err != nil {
		return false, err
	}

	for _, p := range runningProcesses {
		if p.PID() == pid {
			return true, nil
		}
	}
	return false, nil
}

// Acquire creates the lock file. It fails with ErrLocked while another live
// process holds it.
func (l *Lock) Acquire() error {
	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			_, werr := f.WriteString(strconv.Itoa(l.pid))
			cerr := f.Close()
			if werr != nil || cerr != nil {
				os.Remove(l.path)
				return errors.Join(werr, cerr)
			}
			l.logger.Debug("lock acquired", zap.String("path", l.path), zap.Int("pid", l.pid))
			return nil
		}
		if !errors.Is(err, os.ErrExist) {
			return err
		}

		owner, err := l.owner()
		if err != nil {
			l.logger.Warn("unreadable lock file, taking over", zap.String("path", l.path), zap.Error(err))
		} else if owner == l.pid {
			return nil
		} else {
			running, err := l.processRunning(owner)
			if err != nil {
				return fmt.Errorf("check lock owner %d: %w", owner, err)
			}
			if running {
				return fmt.Errorf("%w (pid %d, %s)", ErrLocked, owner, l.path)
			}
			l.logger.Info("removing stale lock", zap.String("path", l.path), zap.Int("owner", owner))
		}

		if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return fmt.Errorf("%w (%s)", ErrLocked, l.path)
}

// Release removes the lock file if this process owns it.
func (l *Lock) Release() error {
	owner, err := l.owner()
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if owner != l.pid {
		return nil
	}
	l.logger.Debug("lock released", zap.String("path", l.path))
	return os.Remove(l.path)
}

func (l *Lock) owner() (int, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}
