package breader_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/openpgp-go/breader/breader"
)

func TestLimitorSingle(t *testing.T) {
	c := qt.New(t)
	src := breader.NewMemory([]byte("01234567890123456789"))
	l := breader.NewLimitor(src, 5)

	view, err := l.Data(5)
	c.Assert(err, qt.IsNil)
	c.Assert(string(view), qt.Equals, "01234")
	l.Consume(5)

	view, err = l.Data(1)
	c.Assert(err, qt.IsNil)
	c.Assert(len(view), qt.Equals, 0)

	inner, ok := l.IntoInner()
	c.Assert(ok, qt.IsTrue)

	view, err = inner.Data(15)
	c.Assert(err, qt.IsNil)
	c.Assert(string(view), qt.Equals, "567890123456789")
	inner.Consume(15)

	view, err = inner.Data(1)
	c.Assert(err, qt.IsNil)
	c.Assert(len(view), qt.Equals, 0)
}

func TestLimitorNestedOuterLooser(t *testing.T) {
	c := qt.New(t)
	src := breader.NewMemory([]byte("01234567890123456789"))
	l := breader.NewLimitor(breader.NewLimitor(src, 5), 15)

	view, err := l.Data(100)
	c.Assert(err, qt.IsNil)
	c.Assert(string(view), qt.Equals, "01234")
	l.Consume(5)

	view, err = l.Data(1)
	c.Assert(err, qt.IsNil)
	c.Assert(len(view), qt.Equals, 0)

	mid, ok := l.IntoInner()
	c.Assert(ok, qt.IsTrue)
	inner, ok := mid.IntoInner()
	c.Assert(ok, qt.IsTrue)

	view, err = inner.Data(15)
	c.Assert(err, qt.IsNil)
	c.Assert(string(view), qt.Equals, "567890123456789")
	inner.Consume(15)

	view, err = inner.Data(1)
	c.Assert(err, qt.IsNil)
	c.Assert(len(view), qt.Equals, 0)
}

func TestLimitorTotalDeliveredBounded(t *testing.T) {
	c := qt.New(t)
	src := breader.NewMemory([]byte("0123456789"))
	l := breader.NewLimitor(src, 4)

	var delivered int
	for i := 0; i < 10; i++ {
		view, err := l.DataConsume(3)
		c.Assert(err, qt.IsNil)
		if len(view) == 0 {
			break
		}
		// The view's first min(3, len(view)) bytes are the ones just
		// consumed; anything past them is lookahead, not delivery.
		delivered += min(len(view), 3)
	}
	c.Assert(delivered, qt.Equals, 4)
}

func TestLimitorConsumeClampIncludesJustConsumedBytes(t *testing.T) {
	c := qt.New(t)
	src := breader.NewMemory([]byte("0123456789"))
	l := breader.NewLimitor(src, 3)

	_, err := l.Data(3)
	c.Assert(err, qt.IsNil)
	view := l.Consume(2)
	c.Assert(len(view) <= 3, qt.IsTrue)
	c.Assert(string(view[:2]), qt.Equals, "01")
}
