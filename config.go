package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jcorbin/gobf/internal/tape"
)

// Config holds every setting that may be given either in a TOML config file
// or by command line flag.
type Config struct {
	TapeSize  uint      `toml:"tape_size"`
	EOF       EOFPolicy `toml:"eof"`
	StepLimit uint      `toml:"step_limit"`
	Timeout   Duration  `toml:"timeout"`
	Trace     bool      `toml:"trace"`
	Dump      bool      `toml:"dump"`
	Raw       bool      `toml:"raw"`
}

// Duration is a time.Duration that decodes from strings like "1m30s".
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func defaultConfig() Config {
	return Config{TapeSize: tape.DefaultSize}
}

// LoadConfig decodes the named TOML file over the given base config.
// Unknown keys are an error, so that typos do not silently pass.
func LoadConfig(name string, base Config) (Config, error) {
	cfg := base
	md, err := toml.DecodeFile(name, &cfg)
	if err != nil {
		return base, fmt.Errorf("config %v: %w", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return base, fmt.Errorf("config %v: unknown keys: %v", name, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// bindFlags defines a flag for every config field, defaulting to its current
// value.
func (cfg *Config) bindFlags(fs *flag.FlagSet) {
	fs.UintVar(&cfg.TapeSize, "tape-size", cfg.TapeSize, "number of tape cells")
	fs.Var(&cfg.EOF, "eof", "end of input policy for reads: error, zero, max, or keep")
	fs.UintVar(&cfg.StepLimit, "step-limit", cfg.StepLimit, "halt after this many instructions; 0 for no limit")
	fs.DurationVar(&cfg.Timeout.Duration, "timeout", cfg.Timeout.Duration, "halt after this much time; 0 for no limit")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "enable trace logging of every instruction")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "dump machine state after an error")
	fs.BoolVar(&cfg.Raw, "raw", cfg.Raw, "put a terminal stdin into raw mode")
}

// merge copies any flags that were explicitly set on fs from the config they
// were bound to.
func (cfg *Config) merge(fs *flag.FlagSet, flags Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tape-size":
			cfg.TapeSize = flags.TapeSize
		case "eof":
			cfg.EOF = flags.EOF
		case "step-limit":
			cfg.StepLimit = flags.StepLimit
		case "timeout":
			cfg.Timeout = flags.Timeout
		case "trace":
			cfg.Trace = flags.Trace
		case "dump":
			cfg.Dump = flags.Dump
		case "raw":
			cfg.Raw = flags.Raw
		}
	})
}

func (cfg Config) options() VMOption {
	return VMOptions(
		WithTapeSize(cfg.TapeSize),
		WithEOF(cfg.EOF),
		WithStepLimit(cfg.StepLimit),
	)
}
