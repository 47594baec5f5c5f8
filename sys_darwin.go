//go:build darwin
// +build darwin

package xattrs

import (
	"golang.org/x/sys/unix"
)

// ENOATTR is the errno reported for a missing attribute.
const ENOATTR = unix.ENOATTR

// getPathSize asks the kernel for the current size of the named
// attribute without fetching it.
// This is the macOS-specific implementation: the native getxattr call
// rejects a zero-length probe unless the buffer pointer itself is
// NULL, so the size query must go out with a nil destination rather
// than an empty one. The L variant keeps XATTR_NOFOLLOW set, the probe
// still targets the link itself.
func getPathSize(path string, name string) (int, error) {
	return unix.Lgetxattr(path, name, nil)
}
