package main

import (
	"errors"
	"fmt"

	"github.com/jcorbin/gobf/internal/fileinput"
)

var (
	// ErrUnmatchedLoopClose indicates a ] reached with an empty loop stack.
	ErrUnmatchedLoopClose = errors.New("unmatched loop close")

	// ErrUnclosedLoop indicates a loop skip that ran off the end of the program.
	ErrUnclosedLoop = errors.New("unclosed loop")

	// ErrInputExhausted indicates a read past the end of input under EOFError.
	ErrInputExhausted = errors.New("input exhausted")

	// ErrStepLimit indicates that a VM ran for its configured number of steps
	// without finishing its program.
	ErrStepLimit = errors.New("step limit exceeded")
)

// LoopError is a loop bracket matching failure, detected at the instruction
// IP, located in source at Loc when known.
type LoopError struct {
	Err error
	IP  uint
	Loc fileinput.Location
}

func (le *LoopError) Error() string {
	if le.Loc.Line != 0 {
		return fmt.Sprintf("%v: %v @%v", le.Loc, le.Err, le.IP)
	}
	return fmt.Sprintf("%v @%v", le.Err, le.IP)
}

func (le *LoopError) Unwrap() error { return le.Err }

// IOError is a failure to "read", "write", or "flush" the VM's streams.
type IOError struct {
	Op  string
	Err error
}

func (ioe *IOError) Error() string { return fmt.Sprintf("%v failed: %v", ioe.Op, ioe.Err) }
func (ioe *IOError) Unwrap() error { return ioe.Err }

// LoadError is a failure to load a named program source.
type LoadError struct {
	Name string
	Err  error
}

func (le *LoadError) Error() string { return fmt.Sprintf("unable to load %v: %v", le.Name, le.Err) }
func (le *LoadError) Unwrap() error { return le.Err }

type codeError struct {
	code byte
	ip   uint
}

func (ce codeError) Error() string { return fmt.Sprintf("invalid code %q @%v", ce.code, ce.ip) }

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }
