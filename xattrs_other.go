//go:build !linux && !darwin
// +build !linux,!darwin

package xattrs

import (
	"os"

	"github.com/pkg/errors"
)

// Supported is false, this platform has no extended attribute support.
const Supported = false

// Get is a stub for platforms without extended attributes.
func Get(path string, name string) ([]byte, error) {
	return nil, ErrNotSupported
}

// Set is a stub for platforms without extended attributes.
func Set(path string, name string, value []byte) error {
	return ErrNotSupported
}

// Remove is a stub for platforms without extended attributes.
func Remove(path string, name string) error {
	return ErrNotSupported
}

// List is a stub for platforms without extended attributes.
func List(path string) (*Names, error) {
	return nil, ErrNotSupported
}

// FGet is a stub for platforms without extended attributes.
func FGet(f *os.File, name string) ([]byte, error) {
	return nil, ErrNotSupported
}

// FSet is a stub for platforms without extended attributes.
func FSet(f *os.File, name string, value []byte) error {
	return ErrNotSupported
}

// FRemove is a stub for platforms without extended attributes.
func FRemove(f *os.File, name string) error {
	return ErrNotSupported
}

// FList is a stub for platforms without extended attributes.
func FList(f *os.File) (*Names, error) {
	return nil, ErrNotSupported
}

// IsNotExist always reports false here, no attribute can exist on a
// platform without extended attribute support.
func IsNotExist(err error) bool {
	return false
}

// IsNotSupported reports whether err came from one of the stubs above.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
