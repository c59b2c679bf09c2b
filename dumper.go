package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/gobf/internal/byteio"
)

const dumpRowSize = 16

type vmDumper struct {
	vm  *VM
	out io.Writer

	addrWidth int
}

func (dump vmDumper) dump() {
	vm := dump.vm
	fmt.Fprintf(dump.out, "# VM Dump\n")
	if vm.ip < uint(len(vm.Code)) {
		code := vm.Code[vm.ip]
		fmt.Fprintf(dump.out, "  ip: %v %q %v\n", vm.ip, code, vm.Loc(vm.ip))
	} else {
		fmt.Fprintf(dump.out, "  ip: %v <end>\n", vm.ip)
	}
	fmt.Fprintf(dump.out, "  steps: %v\n", vm.steps)
	fmt.Fprintf(dump.out, "  loops: %v\n", vm.loops)
	if vm.tape == nil {
		fmt.Fprintf(dump.out, "# Tape unallocated\n")
		return
	}
	fmt.Fprintf(dump.out, "  dp: %v %v\n", vm.tape.Ptr, byteio.Mnemonic(vm.tape.Load()))
	dump.dumpTape()
}

// dumpTape writes every row of the tape that either holds a non-zero cell or
// the data pointer; each run of elided rows is written as "...".
func (dump *vmDumper) dumpTape() {
	tp := dump.vm.tape
	size := tp.Len()
	fmt.Fprintf(dump.out, "# Tape @%v/%v\n", tp.Ptr, size)

	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(int(size - 1)))
	}

	// no row past the last used cell or the pointer needs printing
	end := tp.Used()
	if end <= tp.Ptr {
		end = tp.Ptr + 1
	}

	var (
		buf   strings.Builder
		row   [dumpRowSize]byte
		elide bool
		base  uint
	)
	for ; base < end; base += dumpRowSize {
		cells := row[:]
		if rem := size - base; rem < dumpRowSize {
			cells = cells[:rem]
		}
		tp.LoadInto(base, cells)

		hasPtr := tp.Ptr >= base && tp.Ptr < base+uint(len(cells))
		if !hasPtr && isZero(cells) {
			elide = true
			continue
		}
		if elide {
			io.WriteString(dump.out, "  ...\n")
			elide = false
		}

		buf.Reset()
		fmt.Fprintf(&buf, "  @%*v ", dump.addrWidth, base)
		for i, b := range cells {
			if base+uint(i) == tp.Ptr {
				buf.WriteByte('*')
			} else {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%02x", b)
		}
		buf.WriteByte('\n')
		io.WriteString(dump.out, buf.String())
	}
	if elide || base < size {
		io.WriteString(dump.out, "  ...\n")
	}
}

func isZero(cells []byte) bool {
	for _, b := range cells {
		if b != 0 {
			return false
		}
	}
	return true
}
