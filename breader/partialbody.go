package breader

import "io"

// PartialBodyFilter de-chunks an OpenPGP new-format partial-body-length
// stream, presenting the concatenated payload of every chunk as one
// contiguous Reader and transparently skipping the length-header
// octets between chunks.
//
// remaining counts payload bytes left in the current chunk that have
// not yet been pulled out of inner, whether or not they've been
// delivered to a caller yet. last is set once a Full-length header has
// been read: no further length header will ever be parsed, and the
// stream ends when remaining reaches zero.
//
// While remaining (or last) can satisfy a request on its own, requests
// pass straight through to inner: the fast path. Once a request would
// cross a chunk boundary, side buffering takes over: buf holds bytes
// already pulled out of inner and past any header octets, and cursor
// marks how much of it has been delivered.
type PartialBodyFilter struct {
	inner     Reader
	remaining uint32
	last      bool

	buf    []byte
	cursor int
}

// NewPartialBodyFilter returns a filter over inner whose first chunk
// holds initialLength payload bytes. The caller has already consumed
// that chunk's length header from inner.
func NewPartialBodyFilter(inner Reader, initialLength uint32) *PartialBodyFilter {
	return &PartialBodyFilter{inner: inner, remaining: initialLength}
}

// doFillBuffer grows the side buffer to hold at least amount bytes of
// payload, pulling from inner and parsing length headers as needed. It
// stops early, without error, on a short read or once last is set: the
// caller discovers any resulting shortfall from the size of the
// installed buffer, not from doFillBuffer's return value. An error is
// returned only for a genuine I/O failure or a malformed header, and
// even then the buffer installed so far is kept: bytes successfully
// buffered before the failure remain available to later calls.
func (p *PartialBodyFilter) doFillBuffer(amount int) error {
	buf := make([]byte, amount)
	var amountBuffered int

	if p.buf != nil {
		amountLeft := len(p.buf) - p.cursor
		if amount <= amountLeft {
			asserted("breader.PartialBodyFilter.doFillBuffer: amount %d does not exceed buffered %d", amount, amountLeft)
		}
		amountBuffered = copy(buf, p.buf[p.cursor:])
	}

	var ioErr error
loop:
	for {
		toRead := amount - amountBuffered
		if int(p.remaining) < toRead {
			toRead = int(p.remaining)
		}
		if toRead > 0 {
			n, err := readFromBuffered(p.inner, buf[amountBuffered:amountBuffered+toRead])
			amountBuffered += n
			p.remaining -= uint32(n)
			if err != nil && err != io.EOF {
				ioErr = err
				break loop
			}
			if n < toRead {
				break loop
			}
		}

		if amountBuffered == amount || p.last {
			break loop
		}

		bl, err := ReadBodyLengthNewFormat(p.inner)
		if err != nil {
			ioErr = err
			break loop
		}
		switch bl.Kind {
		case BodyLengthFull:
			p.last = true
			p.remaining = bl.Length
		case BodyLengthPartial:
			p.remaining = bl.Length
		default:
			asserted("breader.PartialBodyFilter.doFillBuffer: indeterminate length header in new-format partial-body stream")
		}
	}

	p.buf = buf[:amountBuffered]
	p.cursor = 0
	return ioErr
}

// fastPath serves a request directly from inner while the current
// chunk (or the last-chunk flag) covers it and no side buffer is
// active, truncating the returned view to what remaining still
// allows.
func (p *PartialBodyFilter) fastPath(amount int, hard, andConsume bool) ([]byte, error) {
	var view []byte
	var err error
	switch {
	case hard && andConsume:
		view, err = p.inner.DataConsumeHard(amount)
	case andConsume:
		view, err = p.inner.DataConsume(amount)
	default:
		view, err = p.inner.Data(amount)
	}
	if err != nil {
		return nil, err
	}

	n := len(view)
	if n > int(p.remaining) {
		n = int(p.remaining)
	}
	if hard && n < amount {
		return nil, errUnexpectedEOF("breader.PartialBodyFilter")
	}
	if andConsume {
		consumed := amount
		if consumed > n {
			consumed = n
		}
		p.remaining -= uint32(consumed)
	}
	return view[:n], nil
}

func (p *PartialBodyFilter) dataHelper(amount int, hard, andConsume bool) ([]byte, error) {
	switch {
	case p.buf == nil && (amount <= int(p.remaining) || p.last):
		return p.fastPath(amount, hard, andConsume)
	case p.buf == nil:
		if err := p.doFillBuffer(amount); err != nil {
			return nil, err
		}
	case amount > len(p.buf)-p.cursor:
		if err := p.doFillBuffer(amount); err != nil {
			return nil, err
		}
	}

	view := p.buf[p.cursor:]
	if hard && len(view) < amount {
		return nil, errUnexpectedEOF("breader.PartialBodyFilter")
	}
	if andConsume {
		n := amount
		if n > len(view) {
			n = len(view)
		}
		p.cursor += n
	}
	return view, nil
}

func (p *PartialBodyFilter) Data(amount int) ([]byte, error) {
	return p.dataHelper(amount, false, false)
}

func (p *PartialBodyFilter) DataHard(amount int) ([]byte, error) {
	return p.dataHelper(amount, true, false)
}

func (p *PartialBodyFilter) DataConsume(amount int) ([]byte, error) {
	return p.dataHelper(amount, false, true)
}

func (p *PartialBodyFilter) DataConsumeHard(amount int) ([]byte, error) {
	return p.dataHelper(amount, true, true)
}

// Consume requires amount bytes to already be buffered, checked by
// assertion: via the side buffer if one is active, otherwise against
// remaining directly.
func (p *PartialBodyFilter) Consume(amount int) []byte {
	if p.buf != nil {
		if amount > len(p.buf)-p.cursor {
			asserted("breader.PartialBodyFilter.Consume: amount %d exceeds buffered %d", amount, len(p.buf)-p.cursor)
		}
		p.cursor += amount
		return p.buf[p.cursor-amount:]
	}
	if amount > int(p.remaining) {
		asserted("breader.PartialBodyFilter.Consume: amount %d exceeds remaining %d", amount, p.remaining)
	}
	p.remaining -= uint32(amount)
	return p.inner.Consume(amount)
}

// IntoInner returns the inner reader, discarding any side buffer,
// chunk counter, and last-chunk flag.
func (p *PartialBodyFilter) IntoInner() (Reader, bool) {
	return p.inner, true
}

// Read implements io.Reader.
func (p *PartialBodyFilter) Read(b []byte) (int, error) {
	return readFromBuffered(p, b)
}
