package breader

import "math"

// Limitor caps the total number of bytes readable from its inner
// Reader at a fixed budget. The budget never increases; every Consume
// of n decrements it by exactly n, and it is the exact maximum number
// of further bytes the filter will ever expose, regardless of how
// much data the inner reader actually holds.
//
// Stacking Limitors composes: Limitor(Limitor(inner, a), b) behaves
// exactly like a single Limitor(inner, min(a, b)), because the outer
// Limitor clips requested amounts down to its own remaining budget
// and the inner Limitor clips returned views down to its own — the
// tighter of the two always wins regardless of nesting order.
type Limitor struct {
	inner     Reader
	remaining uint64
}

// NewLimitor returns a filter that exposes at most limit further
// bytes from inner, taking exclusive ownership of it.
func NewLimitor(inner Reader, limit uint64) *Limitor {
	return &Limitor{inner: inner, remaining: limit}
}

// clampToRemaining returns the smaller of a and remaining, as an int.
func clampToRemaining(a int, remaining uint64) int {
	if uint64(a) <= remaining {
		return a
	}
	if remaining > uint64(math.MaxInt) {
		return a
	}
	return int(remaining)
}

func (l *Limitor) Data(amount int) ([]byte, error) {
	clipped := clampToRemaining(amount, l.remaining)
	view, err := l.inner.Data(clipped)
	if err != nil {
		return nil, err
	}
	if uint64(len(view)) > l.remaining {
		view = view[:l.remaining]
	}
	return view, nil
}

func (l *Limitor) DataHard(amount int) ([]byte, error) {
	if uint64(amount) > l.remaining {
		return nil, errUnexpectedEOF("breader.Limitor.DataHard")
	}
	view, err := l.inner.DataHard(amount)
	if err != nil {
		return nil, err
	}
	if uint64(len(view)) > l.remaining {
		view = view[:l.remaining]
	}
	return view, nil
}

// Consume requires amount <= the current remaining budget (checked
// by assertion), decrements remaining by amount, and returns the
// inner reader's post-consume view truncated to remaining+amount: the
// just-consumed bytes are always included, but lookahead past them is
// clipped to what the budget still allows. This exact clamp —
// remaining+amount rather than remaining — is deliberate: it exposes
// the bytes just consumed plus at most `remaining` bytes of further
// lookahead, so a caller that consumes and then inspects past the
// consumption point without a fresh Data call still sees what it's
// entitled to.
func (l *Limitor) Consume(amount int) []byte {
	if uint64(amount) > l.remaining {
		asserted("breader.Limitor.Consume: amount %d exceeds remaining %d", amount, l.remaining)
	}
	l.remaining -= uint64(amount)
	view := l.inner.Consume(amount)
	limit := l.remaining + uint64(amount)
	if uint64(len(view)) > limit {
		view = view[:limit]
	}
	return view
}

func (l *Limitor) DataConsume(amount int) ([]byte, error) {
	clipped := clampToRemaining(amount, l.remaining)
	view, err := l.inner.DataConsume(clipped)
	if err != nil {
		return nil, err
	}
	l.remaining -= uint64(clipped)
	limit := l.remaining + uint64(clipped)
	if uint64(len(view)) > limit {
		view = view[:limit]
	}
	return view, nil
}

func (l *Limitor) DataConsumeHard(amount int) ([]byte, error) {
	if uint64(amount) > l.remaining {
		return nil, errUnexpectedEOF("breader.Limitor.DataConsumeHard")
	}
	view, err := l.inner.DataConsumeHard(amount)
	if err != nil {
		return nil, err
	}
	l.remaining -= uint64(amount)
	limit := l.remaining + uint64(amount)
	if uint64(len(view)) > limit {
		view = view[:limit]
	}
	return view, nil
}

// IntoInner returns the inner reader, discarding the remaining-budget
// counter.
func (l *Limitor) IntoInner() (Reader, bool) {
	return l.inner, true
}

// Read implements io.Reader.
func (l *Limitor) Read(p []byte) (int, error) {
	return readFromBuffered(l, p)
}
