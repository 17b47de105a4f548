package pipeline

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockPath returns a lock file in the temp dir keyed by the absolute
// destination, so that nothing extra appears next to the output.
func lockPath(dst string) string {
	abs, err := filepath.Abs(dst)
	if err != nil {
		abs = dst
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(abs))
	return filepath.Join(os.TempDir(), fmt.Sprintf("iconopaque-%016x.lock", h.Sum64()))
}

// writeFile replaces dst with data. Concurrent writers to the same
// destination are serialised with a file lock, and the data goes through
// a temp file in the destination directory that is renamed into place.
func writeFile(dst string, data []byte) (err error) {
	lock := flock.New(lockPath(dst))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking destination: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
