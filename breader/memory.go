package breader

// Memory is a leaf Reader over a slice the caller already holds
// entirely in memory. Data and Consume are pure slicing: no copying,
// no I/O, ever.
type Memory struct {
	buf    []byte
	cursor int
}

// NewMemory returns a leaf Reader over buf. The returned Reader
// borrows buf directly; buf must not be modified while the Reader is
// in use.
func NewMemory(buf []byte) *Memory {
	return &Memory{buf: buf}
}

func (m *Memory) Data(amount int) ([]byte, error) {
	return m.buf[m.cursor:], nil
}

func (m *Memory) DataHard(amount int) ([]byte, error) {
	view := m.buf[m.cursor:]
	if len(view) < amount {
		return view, errUnexpectedEOF("breader.Memory.DataHard")
	}
	return view, nil
}

func (m *Memory) Consume(amount int) []byte {
	view := m.buf[m.cursor:]
	if amount > len(view) {
		asserted("breader.Memory.Consume: amount %d exceeds buffered %d", amount, len(view))
	}
	m.cursor += amount
	return m.buf[m.cursor-amount:]
}

func (m *Memory) DataConsume(amount int) ([]byte, error) {
	view := m.buf[m.cursor:]
	n := amount
	if n > len(view) {
		n = len(view)
	}
	m.cursor += n
	return m.buf[m.cursor-n:], nil
}

func (m *Memory) DataConsumeHard(amount int) ([]byte, error) {
	view := m.buf[m.cursor:]
	if len(view) < amount {
		return nil, errUnexpectedEOF("breader.Memory.DataConsumeHard")
	}
	m.cursor += amount
	return m.buf[m.cursor-amount:], nil
}

// IntoInner always returns (nil, false): a Memory reader is a leaf.
func (m *Memory) IntoInner() (Reader, bool) {
	return nil, false
}

// Read implements io.Reader.
func (m *Memory) Read(p []byte) (int, error) {
	return readFromBuffered(m, p)
}
