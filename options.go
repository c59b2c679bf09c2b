package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gobf/internal/byteio"
	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/jcorbin/gobf/internal/tape"
)

// VMOption configures a VM; see the With* functions.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, which applies them in
// order; nil options are ignored.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
	tapeSizeOption(tape.DefaultSize),
	EOFError,
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type programOption struct{ *Program }
type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type tapeSizeOption uint
type stepLimitOption uint
type lineFlushOption bool

func withInput(r io.Reader) inputOption   { return inputOption{r} }
func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (o programOption) apply(vm *VM) {
	vm.Program = *o.Program
	vm.ip = 0
	vm.loops = vm.loops[:0]
}

func (i inputOption) apply(vm *VM) {
	vm.in = byteio.NewReader(i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.Tee(vm.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (size tapeSizeOption) apply(vm *VM) {
	vm.tapeSize = uint(size)
	vm.tape = nil
}

func (lim stepLimitOption) apply(vm *VM) {
	vm.stepLimit = uint(lim)
}

func (lf lineFlushOption) apply(vm *VM) {
	vm.lineFlush = bool(lf)
}

// EOFPolicy determines what the , instruction does at end of input.
type EOFPolicy int

const (
	// EOFError halts the VM with ErrInputExhausted.
	EOFError EOFPolicy = iota
	// EOFZero stores 0 into the current cell.
	EOFZero
	// EOFMax stores 255 into the current cell.
	EOFMax
	// EOFKeep leaves the current cell unchanged.
	EOFKeep
)

var eofPolicyNames = [...]string{"error", "zero", "max", "keep"}

func (policy EOFPolicy) apply(vm *VM) {
	vm.eof = policy
}

func (policy EOFPolicy) String() string {
	if i := int(policy); i >= 0 && i < len(eofPolicyNames) {
		return eofPolicyNames[i]
	}
	return fmt.Sprintf("EOFPolicy(%d)", int(policy))
}

// Set parses a policy name, implementing flag.Value.
func (policy *EOFPolicy) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range eofPolicyNames {
		if s == name {
			*policy = EOFPolicy(i)
			return nil
		}
	}
	return fmt.Errorf("invalid eof policy %q, must be one of %v", s, strings.Join(eofPolicyNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (policy EOFPolicy) MarshalText() ([]byte, error) { return []byte(policy.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (policy *EOFPolicy) UnmarshalText(text []byte) error { return policy.Set(string(text)) }
