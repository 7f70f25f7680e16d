// Package runlock serializes organize runs per target directory using an
// advisory file lock.
package runlock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock holds an acquired run lock until Release is called.
type Lock struct {
	path string
	fl   *flock.Flock
}

// Acquire takes the lock for target, creating lockDir if needed. It fails
// immediately when another run holds the lock.
func Acquire(lockDir, target string) (*Lock, error) {
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	digest := sha256.Sum256([]byte(target))
	path := filepath.Join(lockDir, fmt.Sprintf("organize-%x.lock", digest[:8]))

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another organize run is already working on %s", target)
	}
	return &Lock{path: path, fl: fl}, nil
}

// Release unlocks the run lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}
