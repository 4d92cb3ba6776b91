package breader

import (
	"io"
	"os"
)

// NewFile opens name and returns a Generic leaf buffering reads from
// it, along with the underlying *os.File as an io.Closer. This is the
// file-descriptor-backed leaf the capability set calls for: *os.File
// already satisfies genericio.Reader[byte] structurally, so it needs
// only a convenience constructor, not a distinct Reader
// implementation.
//
// Destroying the returned Reader does not close the file; the caller
// owns the returned Closer and is responsible for closing it once
// done, matching the package's rule that a leaf may reference
// externally-owned resources without assuming their lifetime.
func NewFile(name string) (*Generic, io.Closer, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return NewGeneric(f), f, nil
}
