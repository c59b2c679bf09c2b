package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/gobf/internal/panicerr"
)

// New creates a VM, applying any options over the defaults: no program, empty
// input, discarded output, a 4096 cell tape, and the EOFError policy.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run executes the VM's program until the instruction pointer runs off its
// end, returning nil, or until the VM halts abnormally, returning the cause.
// Any output is flushed in either case.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		vm.run(ctx)
		return nil
	})
	var halted haltError
	if errors.As(err, &halted) {
		err = halted.error
	}
	return err
}

func WithProgram(prog *Program) VMOption { return programOption{prog} }
func WithCode(code []byte) VMOption      { return programOption{&Program{Code: code}} }
func WithInput(r io.Reader) VMOption     { return withInput(r) }
func WithOutput(w io.Writer) VMOption    { return withOutput(w) }
func WithTee(w io.Writer) VMOption       { return withTee(w) }
func WithTapeSize(size uint) VMOption    { return tapeSizeOption(size) }
func WithStepLimit(limit uint) VMOption  { return stepLimitOption(limit) }
func WithLineFlush(enable bool) VMOption { return lineFlushOption(enable) }
func WithEOF(policy EOFPolicy) VMOption  { return policy }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
