package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gobf/internal/fileinput"
)

func TestSanitize(t *testing.T) {
	for _, tc := range []struct {
		name string
		raw  string
		code string
	}{
		{"empty", "", ""},
		{"only code", "+-<>[].,", "+-<>[].,"},
		{"comments", "add two ++ then print .", "++."},
		{"no code", "hello world", ""},
		{"high bytes", "\xff+\x00-\x80", "+-"},
		{"newlines", "+\n+\r\n.", "++."},
	} {
		t.Run(tc.name, func(t *testing.T) {
			code := Sanitize([]byte(tc.raw))
			assert.Equal(t, tc.code, string(code))
			assert.Equal(t, code, Sanitize(code), "expected sanitize to be idempotent")
		})
	}
}

func TestLoadProgram(t *testing.T) {
	prog, err := LoadProgram(
		namedReader{strings.NewReader("a +\n b [-]"), "one.b"},
		namedReader{strings.NewReader(".\n,"), "two.b"},
	)
	require.NoError(t, err)
	assert.Equal(t, "+[-].,", string(prog.Code))
	assert.Equal(t, []fileinput.Location{
		{Name: "one.b", Line: 1, Col: 3},
		{Name: "one.b", Line: 2, Col: 4},
		{Name: "one.b", Line: 2, Col: 5},
		{Name: "one.b", Line: 2, Col: 6},
		{Name: "two.b", Line: 1, Col: 1},
		{Name: "two.b", Line: 2, Col: 1},
	}, prog.Locs)
	assert.Equal(t, "two.b:1:1", prog.Loc(4).String())
	assert.Equal(t, fileinput.Location{}, prog.Loc(6), "expected zero location past the end")

	boom := errors.New("boom")
	_, err = LoadProgram(io.MultiReader(strings.NewReader("++"), errReader{boom}))
	assert.True(t, errors.Is(err, boom), "expected read error, got %v", err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "prog.b")
	require.NoError(t, os.WriteFile(name, []byte("# comment\n++.\n"), 0o644))

	prog, err := LoadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "++.", string(prog.Code))
	assert.Equal(t, fileinput.Location{Name: name, Line: 2, Col: 1}, prog.Loc(0))

	missing := filepath.Join(dir, "missing.b")
	_, err = LoadFile(missing)
	var loadErr *LoadError
	if assert.True(t, errors.As(err, &loadErr), "expected a *LoadError, got %v", err) {
		assert.Equal(t, missing, loadErr.Name)
	}
	assert.True(t, errors.Is(err, fs.ErrNotExist), "expected not exist error, got %v", err)
}

func TestProgram_Check(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		err  string
	}{
		{"empty", "", ""},
		{"balanced", "+[->[-]<]", ""},
		{"unmatched close", "+]", "t.b:1:2: unmatched loop close @1"},
		{"unmatched after balanced", "[]\n]", "t.b:2:1: unmatched loop close @2"},
		{"unclosed", "[[]", "t.b:1:1: unclosed loop @0"},
		{"unclosed reports outermost", "+[[\n[]", "t.b:1:2: unclosed loop @1"},
		{"close before open", "][", "t.b:1:1: unmatched loop close @0"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := LoadProgram(namedReader{strings.NewReader(tc.src), "t.b"})
			require.NoError(t, err)
			if err := prog.Check(); tc.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.err)
			}
		})
	}
}
