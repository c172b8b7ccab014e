package server

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// acquireLock takes the single-instance lock, so two serve processes never
// share one bind address and history database. The returned func releases
// it. An empty path disables locking.
func acquireLock(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}
	lock := flock.New(path)
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !acquired {
		return nil, fmt.Errorf("another sublate instance holds %s", path)
	}
	return func() { _ = lock.Unlock() }, nil
}
