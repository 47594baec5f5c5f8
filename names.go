package xattrs

import (
	"bytes"
)

// Names iterates over a packed attribute name list as returned by the
// kernel: a run of NUL-terminated byte strings with nothing after the
// final terminator. An empty list means the file has no attributes.
//
// A Names owns its buffer outright, so it stays valid for as long as
// the caller needs it and is safe to iterate after further attribute
// mutations on the file. It is single-pass; use Clone to keep an
// independent cursor over the same snapshot.
type Names struct {
	data   []byte
	offset int
}

// Next returns the next attribute name as a fresh byte slice, or false
// once the list is exhausted. Names are raw bytes and are not
// guaranteed to be valid text.
func (it *Names) Next() ([]byte, bool) {
	if it.offset >= len(it.data) {
		return nil, false
	}

	rest := it.data[it.offset:]
	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		// The kernel terminates every name, including the last one.
		panic("xattrs: attribute name list is not NUL terminated")
	}

	name := make([]byte, end)
	copy(name, rest[:end])
	it.offset += end + 1
	return name, true
}

// Remaining reports a lower bound on the number of names left and
// whether that bound is exact. Counting the remainder would mean
// scanning the rest of the buffer, so the bound is exact only once the
// iterator is exhausted; before that it is "at least one".
func (it *Names) Remaining() (int, bool) {
	if it.offset >= len(it.data) {
		return 0, true
	}
	return 1, false
}

// Clone returns an independent iterator positioned at the same name.
// The buffer is deep-copied, so advancing one iterator never affects
// the other.
func (it *Names) Clone() *Names {
	data := make([]byte, len(it.data))
	copy(data, it.data)
	return &Names{
		data:   data,
		offset: it.offset,
	}
}
