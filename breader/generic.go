package breader

import (
	"github.com/openpgp-go/breader/genericio"
	"github.com/openpgp-go/breader/ringbuf"
)

// defaultReadChunk is the smallest amount requested from the
// underlying source per fill, even when less is strictly needed, to
// amortize the cost of many small peeks. It mirrors fastcdc's
// DefaultBufferSize role: a read-ahead size, not a hard limit.
const defaultReadChunk = 4096

// Generic is a leaf Reader that adapts any pull-style byte source
// (anything satisfying genericio.Reader[byte], which every io.Reader
// already does) by buffering it into a ringbuf.Ring.
//
// Unread bytes live in the ring; consumed bytes are discarded from
// its front, the same push-at-end/discard-at-front pattern
// fastcdc.Chunker.fillBuffer uses to avoid re-reading data it has
// already buffered. The ring owns materializing a flat, contiguous
// view of its own contents on demand (Ring.Bytes), so Generic just
// asks for one whenever a caller needs a view.
type Generic struct {
	src genericio.Reader[byte]
	buf ringbuf.Ring
	eof bool

	scratch []byte
}

// NewGeneric returns a leaf Reader that buffers r on demand. Each fill
// asks r for at least defaultReadChunk bytes, so r may be read ahead
// of what callers of the returned Reader have requested.
func NewGeneric(r genericio.Reader[byte]) *Generic {
	return &Generic{src: r}
}

func (g *Generic) fill(amount int) error {
	for g.buf.Len() < amount && !g.eof {
		need := amount - g.buf.Len()
		chunkSize := need
		if chunkSize < defaultReadChunk {
			chunkSize = defaultReadChunk
		}
		if cap(g.scratch) < chunkSize {
			g.scratch = make([]byte, chunkSize)
		}
		n, err := genericio.ReadAtLeast(g.src, g.scratch[:chunkSize], need)
		if n > 0 {
			g.buf.PushSliceEnd(g.scratch[:n])
		}
		switch err {
		case nil:
		case genericio.EOF, genericio.ErrUnexpectedEOF:
			g.eof = true
		default:
			return err
		}
	}
	return nil
}

func (g *Generic) Data(amount int) ([]byte, error) {
	if err := g.fill(amount); err != nil {
		return nil, err
	}
	return g.buf.Bytes(), nil
}

func (g *Generic) DataHard(amount int) ([]byte, error) {
	view, err := g.Data(amount)
	if err != nil {
		return nil, err
	}
	if len(view) < amount {
		return nil, errUnexpectedEOF("breader.Generic.DataHard")
	}
	return view, nil
}

func (g *Generic) Consume(amount int) []byte {
	if amount > g.buf.Len() {
		asserted("breader.Generic.Consume: amount %d exceeds buffered %d", amount, g.buf.Len())
	}
	view := g.buf.Bytes()
	g.buf.DiscardFromStart(amount)
	return view
}

func (g *Generic) DataConsume(amount int) ([]byte, error) {
	view, err := g.Data(amount)
	if err != nil {
		return nil, err
	}
	n := amount
	if n > len(view) {
		n = len(view)
	}
	return g.Consume(n), nil
}

func (g *Generic) DataConsumeHard(amount int) ([]byte, error) {
	view, err := g.Data(amount)
	if err != nil {
		return nil, err
	}
	if len(view) < amount {
		return nil, errUnexpectedEOF("breader.Generic.DataConsumeHard")
	}
	return g.Consume(amount), nil
}

// IntoInner always returns (nil, false): a Generic reader is a leaf.
func (g *Generic) IntoInner() (Reader, bool) {
	return nil, false
}

// Read implements io.Reader.
func (g *Generic) Read(p []byte) (int, error) {
	return readFromBuffered(g, p)
}
