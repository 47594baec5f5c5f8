//go:build linux
// +build linux

package xattrs

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// ENOATTR is the errno reported for a missing attribute. Linux has no
// separate ENOATTR and aliases it to ENODATA.
const ENOATTR = syscall.ENODATA

// getPathSize asks the kernel for the current size of the named
// attribute without fetching it.
// This is the Linux-specific implementation: the ordinary call already
// has size-query semantics when given no destination buffer.
func getPathSize(path string, name string) (int, error) {
	return unix.Lgetxattr(path, name, nil)
}
