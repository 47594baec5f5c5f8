//go:build linux || darwin
// +build linux darwin

package xattrs

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	// minSizedBuffer is the smallest allocation the grow path makes
	// once a probe turns out to be stale.
	minSizedBuffer = 128

	// maxSizedBuffer caps buffer growth. Linux limits a single value
	// and a full name list to 64 KiB each, but macOS values can be far
	// larger, so the ceiling only exists to stop a fetch whose size
	// never converges.
	maxSizedBuffer = 1 << 30
)

// readSized fetches variable-sized data through op, growing the
// destination buffer until the result fits.
//
// op fills dest and returns the byte count written. Called with a nil
// buffer it must instead report the size currently needed, and when
// dest is too small it must fail with unix.ERANGE. That size report is
// only a hint: another process can grow the attribute between the
// probe and the fetch, so ERANGE doubles the buffer and retries rather
// than failing. Growth stops at maxSizedBuffer with ErrBufferTooLarge.
func readSized(op func(dest []byte) (int, error)) ([]byte, error) {
	var buf []byte
	for {
		n, err := op(buf)
		switch {
		case err == nil && n <= len(buf):
			return buf[:n], nil

		case err == nil:
			// A zero-length call has probe semantics and reports the
			// exact size needed right now.
			if n > maxSizedBuffer {
				return nil, errors.WithStack(ErrBufferTooLarge)
			}
			buf = make([]byte, n)

		case errors.Is(err, unix.ERANGE):
			// The attribute grew between the probe and the fetch.
			next := len(buf) * 2
			if next < minSizedBuffer {
				next = minSizedBuffer
			}
			if next > maxSizedBuffer {
				return nil, errors.WithStack(ErrBufferTooLarge)
			}
			buf = make([]byte, next)

		default:
			return nil, err
		}
	}
}
