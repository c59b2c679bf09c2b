package logio_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jcorbin/gobf/internal/logio"
	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("nope") }

func Test_Logger(t *testing.T) {
	var out strings.Builder
	var log logio.Logger
	log.SetOutput(&out)

	log.Printf("INFO", "hello %v", "world")
	log.Leveledf("TRACE")("step @%v", 3)
	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode(), "expected zero exit code before errors")

	log.ErrorIf(errors.New("unmatched loop close"))
	log.Printf("", "bare\n")
	assert.Equal(t, 1, log.ExitCode(), "expected non-zero exit code after an error")

	assert.Equal(t, strings.Join([]string{
		"INFO: hello world",
		"TRACE: step @3",
		"ERROR: unmatched loop close",
		"bare",
	}, "\n")+"\n", out.String())

	log.SetOutput(failWriter{})
	log.Printf("INFO", "lost")
	assert.Equal(t, 2, log.ExitCode(), "expected logging failure exit code")
}

func Test_Writer(t *testing.T) {
	var lines []string
	lw := &logio.Writer{
		Logf: func(mess string, args ...interface{}) {
			lines = append(lines, fmt.Sprintf(mess, args...))
		},
	}
	fmt.Fprintf(lw, "one\ntw")
	assert.Equal(t, []string{"one"}, lines, "expected only complete lines")
	fmt.Fprintf(lw, "o\nthree")
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}
