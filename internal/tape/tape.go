package tape

import (
	"errors"
	"fmt"
)

// DefaultSize is the conventional number of cells, used when no size is
// configured.
const DefaultSize = 4096

// MaxSize bounds the number of cells that New will allocate.
const MaxSize = 1 << 30

// ErrSize indicates an attempt to create a tape with no cells, or with more
// than MaxSize cells.
var ErrSize = errors.New("tape size must be positive")

// Tape implements a fixed length memory of byte cells with a single data
// pointer. Pointer movement wraps around both ends of the tape, and cell
// arithmetic wraps modulo 256; neither is ever an error.
type Tape struct {
	cells []byte

	// Ptr is the index of the current cell; it is always < Len().
	Ptr uint
}

// New allocates a zeroed tape of the given size.
func New(size uint) (*Tape, error) {
	if size == 0 {
		return nil, ErrSize
	}
	if size > MaxSize {
		return nil, fmt.Errorf("%w and at most %v, got %v", ErrSize, MaxSize, size)
	}
	return &Tape{cells: make([]byte, size)}, nil
}

// Len returns the number of cells.
func (t *Tape) Len() uint { return uint(len(t.cells)) }

// Right moves the data pointer one cell right, wrapping to 0 past the end.
func (t *Tape) Right() {
	if t.Ptr++; t.Ptr >= uint(len(t.cells)) {
		t.Ptr = 0
	}
}

// Left moves the data pointer one cell left, wrapping to the last cell past 0.
func (t *Tape) Left() {
	if t.Ptr == 0 {
		t.Ptr = uint(len(t.cells))
	}
	t.Ptr--
}

// Inc adds one to the current cell.
func (t *Tape) Inc() { t.cells[t.Ptr]++ }

// Dec subtracts one from the current cell.
func (t *Tape) Dec() { t.cells[t.Ptr]-- }

// Load returns the current cell value.
func (t *Tape) Load() byte { return t.cells[t.Ptr] }

// Stor sets the current cell value.
func (t *Tape) Stor(b byte) { t.cells[t.Ptr] = b }

// LoadAt returns the value at addr, which wraps modulo the tape length.
func (t *Tape) LoadAt(addr uint) byte {
	return t.cells[addr%uint(len(t.cells))]
}

// StorAt stores values starting at addr, wrapping around the end of the tape.
func (t *Tape) StorAt(addr uint, values ...byte) {
	n := uint(len(t.cells))
	for i, b := range values {
		t.cells[(addr+uint(i))%n] = b
	}
}

// LoadInto fills buf with the cells starting at addr, wrapping around the end
// of the tape as necessary.
func (t *Tape) LoadInto(addr uint, buf []byte) {
	n := uint(len(t.cells))
	addr %= n
	for len(buf) > 0 {
		m := copy(buf, t.cells[addr:])
		buf = buf[m:]
		addr = 0
	}
}

// Used returns one past the highest index holding a non-zero cell, or 0 if the
// tape is blank.
func (t *Tape) Used() uint {
	for i := len(t.cells) - 1; i >= 0; i-- {
		if t.cells[i] != 0 {
			return uint(i) + 1
		}
	}
	return 0
}

func (t *Tape) String() string {
	return fmt.Sprintf("tape[%v]@%v", len(t.cells), t.Ptr)
}
