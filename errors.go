package xattrs

import (
	"github.com/pkg/errors"
)

// ErrNotSupported is returned by every operation on platforms without
// extended attribute support.
var ErrNotSupported = errors.New("xattrs: extended attributes not supported on this platform")

// ErrBufferTooLarge is returned when an attribute keeps growing faster
// than the fetch loop can size its buffer and the loop hits its hard
// ceiling instead of retrying indefinitely.
var ErrBufferTooLarge = errors.New("xattrs: could not size attribute buffer")
