package breader_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/openpgp-go/breader/breader"
)

func TestReadBodyLengthNewFormatOneOctet(t *testing.T) {
	c := qt.New(t)
	m := breader.NewMemory([]byte{100})

	got, err := breader.ReadBodyLengthNewFormat(m)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, breader.BodyLength{Kind: breader.BodyLengthFull, Length: 100})
}

func TestReadBodyLengthNewFormatOneOctetBoundary(t *testing.T) {
	c := qt.New(t)
	m := breader.NewMemory([]byte{191})

	got, err := breader.ReadBodyLengthNewFormat(m)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, breader.BodyLength{Kind: breader.BodyLengthFull, Length: 191})
}

func TestReadBodyLengthNewFormatTwoOctet(t *testing.T) {
	c := qt.New(t)
	// first=192 (lower bound of the two-octet range), second=0 ->
	// (192-192)<<8 + 0 + 192 = 192.
	m := breader.NewMemory([]byte{192, 0})

	got, err := breader.ReadBodyLengthNewFormat(m)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, breader.BodyLength{Kind: breader.BodyLengthFull, Length: 192})
}

func TestReadBodyLengthNewFormatTwoOctetUpperBound(t *testing.T) {
	c := qt.New(t)
	// first=223 (upper bound of the two-octet range), second=255 ->
	// (223-192)<<8 + 255 + 192 = 7936 + 255 + 192 = 8383.
	m := breader.NewMemory([]byte{223, 255})

	got, err := breader.ReadBodyLengthNewFormat(m)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, breader.BodyLength{Kind: breader.BodyLengthFull, Length: 8383})
}

func TestReadBodyLengthNewFormatPartial(t *testing.T) {
	c := qt.New(t)
	// first=224 -> 1 << (224 & 0x1f) = 1 << 0 = 1.
	m := breader.NewMemory([]byte{224})

	got, err := breader.ReadBodyLengthNewFormat(m)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, breader.BodyLength{Kind: breader.BodyLengthPartial, Length: 1})
}

func TestReadBodyLengthNewFormatPartialUpperBound(t *testing.T) {
	c := qt.New(t)
	// first=254 -> 1 << (254 & 0x1f) = 1 << 30.
	m := breader.NewMemory([]byte{254})

	got, err := breader.ReadBodyLengthNewFormat(m)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, breader.BodyLength{Kind: breader.BodyLengthPartial, Length: 1 << 30})
}

func TestReadBodyLengthNewFormatFiveOctet(t *testing.T) {
	c := qt.New(t)
	m := breader.NewMemory([]byte{255, 0x00, 0x01, 0x02, 0x03})

	got, err := breader.ReadBodyLengthNewFormat(m)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, breader.BodyLength{Kind: breader.BodyLengthFull, Length: 0x00010203})
}

func TestReadBodyLengthNewFormatFailsOnEmptyInput(t *testing.T) {
	c := qt.New(t)
	m := breader.NewMemory(nil)

	_, err := breader.ReadBodyLengthNewFormat(m)
	c.Assert(err, qt.ErrorIs, breader.ErrUnexpectedEOF)
}

func TestReadBodyLengthNewFormatFailsOnTruncatedTwoOctet(t *testing.T) {
	c := qt.New(t)
	m := breader.NewMemory([]byte{200})

	_, err := breader.ReadBodyLengthNewFormat(m)
	c.Assert(err, qt.ErrorIs, breader.ErrUnexpectedEOF)
}

func TestReadBodyLengthNewFormatFailsOnTruncatedFiveOctet(t *testing.T) {
	c := qt.New(t)
	m := breader.NewMemory([]byte{255, 0x00, 0x01})

	_, err := breader.ReadBodyLengthNewFormat(m)
	c.Assert(err, qt.ErrorIs, breader.ErrUnexpectedEOF)
}
