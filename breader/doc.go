// Package breader implements a layered, zero-copy buffered reader for
// OpenPGP packet streams.
//
// A Reader is a stateful cursor over a finite-or-infinite byte
// stream. Data returns a borrowed view of upcoming bytes without
// advancing the cursor; Consume advances the cursor past bytes the
// caller is done with. Any byte returned by Data remains addressable
// at the same memory location, with the same value, until the caller
// explicitly consumes it.
//
// The bottom of a Reader stack is always a leaf (Memory or Generic);
// above it, filters exclusively own the reader beneath them and
// transform the byte stream as it flows upward. Two filters are
// provided: Limitor, which caps the total number of bytes readable
// from its inner reader, and PartialBodyFilter, which splices
// OpenPGP new-format partial-body chunks into a single logical
// stream.
//
// Every operation is synchronous and single-threaded per stream.
// There is no seeking and no random access: once bytes are consumed
// they cannot be revisited.
package breader
