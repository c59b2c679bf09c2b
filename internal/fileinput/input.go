package fileinput

import (
	"fmt"
	"io"

	"github.com/jcorbin/gobf/internal/byteio"
)

// Location names a byte position in an Input stream.
type Location struct {
	Name string
	Line int
	Col  int
}

func (loc Location) String() string {
	if loc.Name == "" && loc.Line == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Col)
}

// Input implements sequential byte reading through a Queue of one or more
// input streams, tracking the Location of every byte read.
// Streams that implement io.Closer are closed once exhausted.
type Input struct {
	br    byteio.Reader
	Queue []io.Reader

	// Last is the location of the byte most recently returned by ReadByte.
	Last Location

	// Loc is the location of the next byte to be read.
	Loc Location
}

// ReadByte reads one byte from the current input stream, recording its
// location in Last. Moves on to the next queued stream after EOF; returns
// io.EOF only once all queued streams have been exhausted.
func (in *Input) ReadByte() (byte, error) {
	for {
		if in.br == nil && !in.nextIn() {
			in.Last = in.Loc
			return 0, io.EOF
		}

		in.Last = in.Loc
		b, err := in.br.ReadByte()
		if err == nil {
			if b == '\n' {
				in.Loc.Line++
				in.Loc.Col = 1
			} else {
				in.Loc.Col++
			}
			return b, nil
		}
		if err != io.EOF {
			return 0, err
		}
		in.closeIn()
	}
}

// Close closes the current stream and any queued streams.
func (in *Input) Close() (err error) {
	err = in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() (err error) {
	if in.br != nil {
		if cl, ok := in.br.(io.Closer); ok {
			err = cl.Close()
		}
		in.br = nil
	}
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.br = byteio.NewReader(r)
		in.Loc = Location{Name: nameOf(r), Line: 1, Col: 1}
	}
	return in.br != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
