package main

import (
	"io"

	"github.com/jcorbin/gobf/internal/tape"
)

//// Section 1: The Machine

// VM implements the tape machine. It has two chunks of memory: the program,
// which it may only read, and the tape, which the program may only reach
// through the data pointer.
type VM struct {
	ioCore

	// The program is an immutable sequence of instruction bytes; it has
	// already been sanitized by the loader, so any other byte is a fault.
	Program

	ip    uint // instruction pointer
	steps uint // instructions executed so far

	// The tape is a fixed length array of byte cells; the data pointer lives
	// within it as tape.Ptr.
	tape     *tape.Tape
	tapeSize uint

	// The loop stack holds the address of every [ currently being looped
	// over, innermost last.
	loops []uint

	eof       EOFPolicy
	stepLimit uint
	lineFlush bool
}

//// Memory Operations

//	Symbol   Name    Function
//	   >     right   move the data pointer one cell right, wrapping past the
//	                 last cell back to the first
func (vm *VM) right() bool { vm.tape.Right(); return false }

//	Symbol   Name    Function
//	   <     left    move the data pointer one cell left, wrapping past the
//	                 first cell around to the last
func (vm *VM) left() bool { vm.tape.Left(); return false }

//	Symbol   Name    Function
//	   +     inc     add one to the current cell, 255 wraps to 0
func (vm *VM) inc() bool { vm.tape.Inc(); return false }

//	Symbol   Name    Function
//	   -     dec     subtract one from the current cell, 0 wraps to 255
func (vm *VM) dec() bool { vm.tape.Dec(); return false }

//// Input/Output Operations

//	Symbol   Name    Function
//	   .     echo    write the current cell to output as a byte
func (vm *VM) echo() bool { vm.writeByte(vm.tape.Load()); return false }

//	Symbol   Name    Function
//	   ,     key     read a byte of input into the current cell; what happens
//	                 at end of input depends on the VM's EOFPolicy
func (vm *VM) key() bool {
	b, err := vm.readByte()
	if err == io.EOF {
		switch vm.eof {
		case EOFZero:
			b = 0
		case EOFMax:
			b = 0xff
		case EOFKeep:
			return false
		default:
			vm.halt(&IOError{"read", ErrInputExhausted})
		}
	} else if err != nil {
		vm.halt(&IOError{"read", err})
	}
	vm.tape.Stor(b)
	return false
}

//// Control Operations

//	Symbol   Name    Function
//	   [     loop    if the current cell is zero, skip past the matching ];
//	                 otherwise push our address onto the loop stack and
//	                 continue into the loop body
func (vm *VM) loop() bool {
	if vm.tape.Load() != 0 {
		vm.loops = append(vm.loops, vm.ip)
		return false
	}
	n, err := skipLoop(vm.Code[vm.ip:])
	if err != nil {
		vm.halt(vm.loopError(err, vm.ip))
	}
	vm.ip += n // the step advance moves past the ]
	return false
}

//	Symbol   Name    Function
//	   ]     pool    pop the loop stack, and jump back to that [ so that it
//	                 may re-test the current cell
func (vm *VM) pool() bool {
	i := len(vm.loops) - 1
	if i < 0 {
		vm.halt(vm.loopError(ErrUnmatchedLoopClose, vm.ip))
	}
	vm.ip, vm.loops = vm.loops[i], vm.loops[:i]
	return true
}

// skipLoop returns the offset of the ] that matches the [ at code[0], by
// counting nesting depth; the scan is linear in the length of the skipped
// loop.
func skipLoop(code []byte) (uint, error) {
	depth := 0
	for i, b := range code {
		switch b {
		case '[':
			depth++
		case ']':
			if depth--; depth == 0 {
				return uint(i), nil
			}
		}
	}
	return 0, ErrUnclosedLoop
}

//// The dispatch table maps every instruction byte to its operation; an
//// operation returns true only if it set the instruction pointer itself.

var vmCodeTable [256]func(vm *VM) bool
var vmCodeNames [256]string

func init() {
	for _, op := range []struct {
		code byte
		name string
		fn   func(vm *VM) bool
	}{
		{'>', "right", (*VM).right},
		{'<', "left", (*VM).left},
		{'+', "inc", (*VM).inc},
		{'-', "dec", (*VM).dec},
		{'.', "echo", (*VM).echo},
		{',', "key", (*VM).key},
		{'[', "loop", (*VM).loop},
		{']', "pool", (*VM).pool},
	} {
		vmCodeTable[op.code] = op.fn
		vmCodeNames[op.code] = op.name
	}
}
