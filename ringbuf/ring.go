// Package ringbuf provides a byte-specialized circular buffer for
// accumulating a pull-style stream and handing back a contiguous view
// of whatever has been buffered so far.
package ringbuf

import "math/bits"

// Ring holds a slice-backed circular buffer of bytes. Bytes are
// appended at the end and discarded from the start, the append/drain
// pattern a read-ahead buffer needs; there is no random insertion or
// removal.
//
// The zero value is an empty, ready-to-use Ring.
//
// Unlike a general-purpose container, Ring also owns the materialized
// flat view of its contents: Bytes returns a contiguous []byte built
// from (possibly wrapped-around) internal storage, caching it until
// the next Push or Discard invalidates it. Folding that cache in here
// rather than in the caller means the one piece of state that must
// stay consistent with the wraparound bookkeeping — "is the flat view
// still accurate" — lives next to the bookkeeping itself.
type Ring struct {
	// buf holds the backing slice. Its capacity is always a power
	// of two or zero.
	//
	// The length of buf is used unconventionally: it marks the
	// start of the data. When the data is contiguous it occupies
	// buf[len(buf):len(buf)+n]; when it wraps the end of the
	// backing array it occupies buf[len(buf):cap(buf)], buf[:n-(cap(buf)-len(buf))].
	buf []byte
	n   int

	flat      []byte
	flatValid bool
}

// Len returns the number of buffered bytes.
func (r *Ring) Len() int { return r.n }

// Cap returns the capacity of the underlying storage.
func (r *Ring) Cap() int { return cap(r.buf) }

// PushSliceEnd appends src to the end of the buffer.
func (r *Ring) PushSliceEnd(src []byte) {
	r.ensureCap(r.Len() + len(src))
	buf, _, i1 := r.get()

	if i1+len(src) <= len(buf) {
		copy(buf[i1:], src)
	} else {
		n := copy(buf[i1:], src)
		copy(buf, src[n:])
	}
	r.n += len(src)
	r.flatValid = false
}

// DiscardFromStart discards min(r.Len(), n) bytes from the start of
// the buffer and returns the number actually discarded.
func (r *Ring) DiscardFromStart(n int) int {
	n = min(r.Len(), n)
	if n == 0 {
		return 0
	}
	buf, i0, _ := r.get()
	if i0+n < len(buf) {
		clear(buf[i0:r.mod(i0+n)])
	} else {
		clear(r.buf[i0:])
		clear(r.buf[:n-(len(buf)-i0)])
	}
	i0 = r.mod(i0 + n)
	r.buf = r.buf[:i0]
	r.n -= n
	r.flatValid = false
	return n
}

// Bytes returns a contiguous view of every buffered byte, in order.
// The returned slice is owned by Ring and is only valid until the
// next call to PushSliceEnd or DiscardFromStart; it is rebuilt only
// when the buffered content has actually changed since the last call.
func (r *Ring) Bytes() []byte {
	if r.flatValid {
		return r.flat
	}
	if cap(r.flat) < r.n {
		r.flat = make([]byte, r.n)
	}
	r.flat = r.flat[:r.n]
	s0, s1 := r.slices()
	k := copy(r.flat, s0)
	copy(r.flat[k:], s1)
	r.flatValid = true
	return r.flat
}

func (r *Ring) ensureCap(n int) {
	if n <= cap(r.buf) {
		return
	}
	r.resize(n)
}

func (r *Ring) resize(minCap int) {
	newCap := 1 << bits.Len(uint(minCap-1))
	if newCap == r.Cap() {
		return
	}
	buf, i0, i1 := r.get()
	buf1 := make([]byte, newCap)
	if i0 < i1 {
		copy(buf1, buf[i0:i1])
	} else {
		n := copy(buf1, buf[i0:])
		copy(buf1[n:], buf[:i1])
	}
	r.buf = buf1[:0]
}

// get returns the full backing slice and the indexes into it of the
// start and just-after-the-end bytes. When i1 < i0, or i1 == i0 with
// the buffer full, the data is stored at buf[i0:], buf[:i1].
func (r *Ring) get() ([]byte, int, int) {
	return r.buf[:cap(r.buf)], len(r.buf), r.mod(len(r.buf) + r.n)
}

func (r *Ring) slices() ([]byte, []byte) {
	data, i0, i1 := r.get()
	if i1 > i0 || r.n == 0 {
		return data[i0:i1:i1], nil
	}
	return data[i0:], data[:i1]
}

// mod returns x modulo the buffer capacity. It relies on the
// capacity always being a power of 2.
func (r *Ring) mod(x int) int {
	return x & (cap(r.buf) - 1)
}
