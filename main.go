package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jcorbin/gobf/internal/logio"
	"github.com/jcorbin/gobf/internal/panicerr"
)

func main() {
	os.Exit(cli(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func cli(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var log logio.Logger
	log.SetOutput(stderr)

	fs := flag.NewFlagSet("gobf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: gobf [flags] PROGRAM\n")
		fs.PrintDefaults()
	}

	var configPath, teePath string
	var check bool
	flags := defaultConfig()
	fs.StringVar(&configPath, "config", "", "load settings from a TOML file; flags take precedence")
	fs.BoolVar(&check, "check", false, "only check that program loops are well formed, do not run it")
	fs.StringVar(&teePath, "tee", "", "also write program output to this file")
	flags.bindFlags(fs)

	if err := fs.Parse(args); err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg := defaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath, cfg); err != nil {
			log.ErrorIf(err)
			return log.ExitCode()
		}
	}
	cfg.merge(fs, flags)

	prog, err := LoadFile(fs.Arg(0))
	if err != nil {
		log.ErrorIf(err)
		return log.ExitCode()
	}
	if check {
		log.ErrorIf(prog.Check())
		return log.ExitCode()
	}

	var opts = []VMOption{
		WithProgram(prog),
		WithInput(stdin),
		WithOutput(stdout),
		cfg.options(),
	}
	if cfg.Trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if isTerminal(stdout) {
		opts = append(opts, WithLineFlush(true))
	}
	if cfg.Raw {
		restore, err := makeRaw(stdin)
		if err != nil {
			log.ErrorIf(err)
			return log.ExitCode()
		}
		defer restore()
	}
	if cfg.Timeout.Duration != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout.Duration)
		defer cancel()
	}

	if teePath != "" {
		f, err := os.Create(teePath)
		if err != nil {
			log.ErrorIf(err)
			return log.ExitCode()
		}
		// closed along with the VM
		opts = append(opts, WithTee(f))
	}

	vm := New(opts...)
	defer vm.Close()
	if err := vm.Run(ctx); err != nil {
		log.Errorf("%v", err)
		if panicerr.IsPanic(err) {
			log.Printf("PANIC", "%s", panicerr.PanicStack(err))
		} else if panicerr.IsExit(err) {
			log.Printf("PANIC", "unexpected goroutine exit")
		}
		if cfg.Dump {
			lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
			vmDumper{vm: vm, out: lw}.dump()
			lw.Close()
		}
	}
	return log.ExitCode()
}

func isTerminal(f interface{}) bool {
	if file, ok := f.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// makeRaw puts a terminal stdin into raw mode, so that reads see every key
// press as it happens; it does nothing if stdin is not a terminal.
func makeRaw(stdin io.Reader) (restore func(), err error) {
	file, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return func() {}, nil
	}
	fd := int(file.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("unable to make stdin raw: %w", err)
	}
	return func() { term.Restore(fd, state) }, nil
}
