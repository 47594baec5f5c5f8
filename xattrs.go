//go:build linux || darwin
// +build linux darwin

package xattrs

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Supported is true when the platform implements extended attributes.
const Supported = true

// Get returns the value of the named extended attribute of the file at
// path. The path's own link is inspected, a symbolic link is never
// followed. A missing attribute reports ENOATTR, see IsNotExist.
func Get(path string, name string) ([]byte, error) {
	value, err := readSized(func(dest []byte) (int, error) {
		if len(dest) == 0 {
			return getPathSize(path, name)
		}
		return unix.Lgetxattr(path, name, dest)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return value, nil
}

// Set writes the named extended attribute of the file at path,
// creating it or replacing its previous value. The path's own link is
// modified, a symbolic link is never followed.
func Set(path string, name string, value []byte) error {
	return errors.WithStack(unix.Lsetxattr(path, name, value, 0))
}

// Remove deletes the named extended attribute of the file at path. The
// path's own link is modified, a symbolic link is never followed. A
// missing attribute reports ENOATTR, see IsNotExist.
func Remove(path string, name string) error {
	return errors.WithStack(unix.Lremovexattr(path, name))
}

// List enumerates the extended attribute names of the file at path, in
// the order the kernel reports them. The path's own link is inspected,
// a symbolic link is never followed.
func List(path string) (*Names, error) {
	data, err := readSized(func(dest []byte) (int, error) {
		return unix.Llistxattr(path, dest)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Names{data: data}, nil
}

// FGet returns the value of the named extended attribute of the open
// file f. The descriptor is borrowed for the duration of the call and
// must stay valid until it returns.
func FGet(f *os.File, name string) ([]byte, error) {
	value, err := readSized(func(dest []byte) (int, error) {
		return unix.Fgetxattr(int(f.Fd()), name, dest)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return value, nil
}

// FSet writes the named extended attribute of the open file f,
// creating it or replacing its previous value.
func FSet(f *os.File, name string, value []byte) error {
	return errors.WithStack(unix.Fsetxattr(int(f.Fd()), name, value, 0))
}

// FRemove deletes the named extended attribute of the open file f.
func FRemove(f *os.File, name string) error {
	return errors.WithStack(unix.Fremovexattr(int(f.Fd()), name))
}

// FList enumerates the extended attribute names of the open file f, in
// the order the kernel reports them.
func FList(f *os.File) (*Names, error) {
	data, err := readSized(func(dest []byte) (int, error) {
		return unix.Flistxattr(int(f.Fd()), dest)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Names{data: data}, nil
}

// IsNotExist reports whether err says the requested attribute does not
// exist on the file.
func IsNotExist(err error) bool {
	return errors.Is(err, ENOATTR)
}

// IsNotSupported reports whether err says extended attributes are not
// available, either on this platform or on the filesystem backing the
// file. Network and FAT-family filesystems commonly report this.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported) ||
		errors.Is(err, unix.ENOTSUP) ||
		errors.Is(err, unix.EOPNOTSUPP)
}
