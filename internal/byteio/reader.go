package byteio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading single bytes.
type Reader interface {
	io.Reader
	io.ByteReader
}

// NewReader returns a Reader from r; if r already implements, it is simply
// returned. Otherwise a bufio.Reader provides byte reading around r.
// If r implements Name() string, so will the returned Reader, and if it
// implements io.Closer the returned Reader will close it.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	br := byteReader{bufio.NewReader(r), r}
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedByteReader{br, impl.Name()}
	}
	return br
}

type byteReader struct {
	*bufio.Reader
	under io.Reader
}

func (br byteReader) Close() error {
	if cl, ok := br.under.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

type namedByteReader struct {
	byteReader
	name string
}

func (nr namedByteReader) Name() string { return nr.name }
