package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher creates a new flushable writer around w:
// - io.Discard and in-memory buffers get a noop Flush
// - any w that is already a WriteFlusher is returned as-is
// - otherwise a bufio.Writer is returned
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == io.Discard {
		return nopFlusher{w}
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// bytes.Buffer, strings.Builder, and the like
	type buffer interface {
		io.Writer
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// WriteByte writes b to wf, using io.ByteWriter when available.
func WriteByte(wf io.Writer, b byte) error {
	if bw, ok := wf.(io.ByteWriter); ok {
		return bw.WriteByte(b)
	}
	var buf [1]byte
	buf[0] = b
	n, err := wf.Write(buf[:])
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}
	return err
}

// LineFlusher wraps a WriteFlusher so that it is flushed after every write
// containing a line feed.
func LineFlusher(wf WriteFlusher) WriteFlusher {
	if lf, is := wf.(lineFlusher); is {
		return lf
	}
	return lineFlusher{wf}
}

type lineFlusher struct{ WriteFlusher }

func (lf lineFlusher) Write(p []byte) (n int, err error) {
	n, err = lf.WriteFlusher.Write(p)
	if err == nil {
		for _, b := range p[:n] {
			if b == '\n' {
				err = lf.Flush()
				break
			}
		}
	}
	return n, err
}

func (lf lineFlusher) WriteByte(b byte) error {
	if err := WriteByte(lf.WriteFlusher, b); err != nil {
		return err
	}
	if b == '\n' {
		return lf.Flush()
	}
	return nil
}
