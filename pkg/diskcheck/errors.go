package diskcheck

import (
	"errors"
	"io/fs"
	"syscall"
)

// isDeviceError reports whether err came from the OS refusing to stat a
// filesystem (device not ready, stale mount, permission denied). Such
// partitions are skipped rather than failing the whole check.
func isDeviceError(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return true
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}
