// Package xattrs reads, writes, removes and enumerates extended
// attributes, the named byte-string metadata entries that filesystems
// attach to files.
//
// Every operation comes in two forms. Get, Set, Remove and List take a
// path and always act on the path's own link; a symbolic link is never
// followed. FGet, FSet, FRemove and FList take an open *os.File, which
// is borrowed for the duration of the call and never closed.
//
// Attribute names and values are opaque byte sequences. The library
// imposes no encoding or namespace policy beyond what the kernel
// enforces; writes always use create-or-replace semantics.
//
// Operations are synchronous and touch no shared state, so they may be
// called concurrently from multiple goroutines.
package xattrs
