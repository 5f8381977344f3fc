package gate

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".run-gate.lock"

// RunLock serializes gate runs in one working tree. The steps inherit
// the terminal streams, so two concurrent runs would interleave tool
// output; the lock makes a second invocation wait its turn instead.
type RunLock struct {
	flock *flock.Flock
}

func NewRunLock(dir string) *RunLock {
	return &RunLock{
		flock: flock.New(filepath.Join(dir, lockFileName)),
	}
}

func (l *RunLock) Acquire() error {
	if err := l.flock.Lock(); err != nil {
		return fmt.Errorf("acquiring run lock: %w", err)
	}
	return nil
}

// TryAcquire reports false without blocking when another run holds the
// lock.
func (l *RunLock) TryAcquire() (bool, error) {
	ok, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("acquiring run lock: %w", err)
	}
	return ok, nil
}

func (l *RunLock) Release() error {
	return l.flock.Unlock()
}

func (l *RunLock) Path() string {
	return l.flock.Path()
}
