package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gobf/internal/byteio"
	"github.com/jcorbin/gobf/internal/flushio"
)

type ioCore struct {
	logging
	in      byteio.Reader
	out     flushio.WriteFlusher
	closers []io.Closer
}

func (ioc *ioCore) Close() (err error) {
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	ioc.closers = nil
	return err
}

func (ioc *ioCore) flush() error {
	if ioc.out == nil {
		return nil
	}
	if err := ioc.out.Flush(); err != nil {
		return &IOError{"flush", err}
	}
	return nil
}

func (vm *VM) writeByte(b byte) {
	if err := flushio.WriteByte(vm.out, b); err != nil {
		vm.halt(&IOError{"write", err})
	}
}

// readByte flushes any pending output before blocking on input, so that any
// prompt is seen before the program waits for an answer.
func (vm *VM) readByte() (byte, error) {
	vm.haltif(vm.flush())
	return vm.in.ReadByte()
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
