package main

import (
	"context"

	"github.com/jcorbin/gobf/internal/byteio"
	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/jcorbin/gobf/internal/tape"
)

// ctxCheckInterval is how many steps pass between context checks.
const ctxCheckInterval = 4096

func (vm *VM) halt(err error) {
	if ferr := vm.flush(); err == nil {
		err = ferr
	}

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		vm.logf("#", "halt error: %v", err)
	}()

	panic(haltError{err})
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

func (vm *VM) loopError(err error, ip uint) *LoopError {
	return &LoopError{err, ip, vm.Loc(ip)}
}

func (vm *VM) init() {
	if vm.tape == nil {
		tp, err := tape.New(vm.tapeSize)
		vm.haltif(err)
		vm.tape = tp
	}
	if vm.lineFlush && vm.out != nil {
		vm.out = flushio.LineFlusher(vm.out)
	}
}

func (vm *VM) run(ctx context.Context) {
	vm.init()
	vm.exec(ctx)
	vm.haltif(vm.flush())
	vm.logf("#", "done after %v steps", vm.steps)
}

func (vm *VM) exec(ctx context.Context) {
	vm.haltif(ctx.Err())
	for vm.ip < uint(len(vm.Code)) {
		if vm.stepLimit != 0 && vm.steps >= vm.stepLimit {
			vm.halt(ErrStepLimit)
		}
		if vm.steps++; vm.steps%ctxCheckInterval == 0 {
			vm.haltif(ctx.Err())
		}
		vm.step()
	}
}

func (vm *VM) step() {
	code := vm.Code[vm.ip]
	op := vmCodeTable[code]
	if op == nil {
		vm.halt(codeError{code, vm.ip})
	}
	if vm.logfn != nil {
		vm.logf(">", "@%v %v %q %v -- dp:%v cell:%v loops:%v",
			vm.ip, vm.Loc(vm.ip), code, vmCodeNames[code],
			vm.tape.Ptr, byteio.Mnemonic(vm.tape.Load()), len(vm.loops))
	}
	if !op(vm) {
		vm.ip++
	}
}
