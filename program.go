package main

import (
	"io"
	"os"

	"github.com/jcorbin/gobf/internal/fileinput"
)

// Program is a sanitized instruction sequence, along with the source location
// of each instruction when it was loaded from a named source.
type Program struct {
	Code []byte
	Locs []fileinput.Location
}

func isCode(b byte) bool {
	switch b {
	case '>', '<', '+', '-', '.', ',', '[', ']':
		return true
	}
	return false
}

// Sanitize returns only the instruction bytes from raw, in their original
// order.
func Sanitize(raw []byte) []byte {
	code := make([]byte, 0, len(raw))
	for _, b := range raw {
		if isCode(b) {
			code = append(code, b)
		}
	}
	return code
}

// LoadProgram reads and sanitizes a program from one or more readers,
// concatenated in order. Readers that implement io.Closer are closed.
func LoadProgram(readers ...io.Reader) (*Program, error) {
	in := fileinput.Input{Queue: readers}
	defer in.Close()

	var prog Program
	for {
		b, err := in.ReadByte()
		if err == io.EOF {
			return &prog, nil
		} else if err != nil {
			return nil, err
		}
		if isCode(b) {
			prog.Code = append(prog.Code, b)
			prog.Locs = append(prog.Locs, in.Last)
		}
	}
}

// LoadFile loads a program from the named file.
func LoadFile(name string) (*Program, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &LoadError{name, err}
	}
	prog, err := LoadProgram(f)
	if err != nil {
		return nil, &LoadError{name, err}
	}
	return prog, nil
}

// Loc returns the source location of the instruction at ip, or a zero
// Location if it is unknown.
func (prog *Program) Loc(ip uint) fileinput.Location {
	if ip < uint(len(prog.Locs)) {
		return prog.Locs[ip]
	}
	return fileinput.Location{}
}

// Check eagerly matches every loop bracket in the program, returning a
// *LoopError for the first unmatched ] or, failing that, the first unclosed
// [. Running a program does not require checking it first.
func (prog *Program) Check() error {
	var opens []uint
	for ip, code := range prog.Code {
		switch code {
		case '[':
			opens = append(opens, uint(ip))
		case ']':
			if len(opens) == 0 {
				return &LoopError{ErrUnmatchedLoopClose, uint(ip), prog.Loc(uint(ip))}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) > 0 {
		return &LoopError{ErrUnclosedLoop, opens[0], prog.Loc(opens[0])}
	}
	return nil
}
