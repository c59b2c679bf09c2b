package flushio_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pipeWriter struct{ w io.Writer }

func (pw pipeWriter) Write(p []byte) (int, error) { return pw.w.Write(p) }

type failWriter struct{ err error }

func (fw failWriter) Write(p []byte) (int, error) { return 0, fw.err }

func Test_NewWriteFlusher(t *testing.T) {
	t.Run("buffers need no flush", func(t *testing.T) {
		var sb strings.Builder
		wf := flushio.NewWriteFlusher(&sb)
		require.NoError(t, flushio.WriteByte(wf, 'x'))
		assert.Equal(t, "x", sb.String(), "expected unbuffered write into builder")
	})

	t.Run("other writers are buffered", func(t *testing.T) {
		var buf bytes.Buffer
		wf := flushio.NewWriteFlusher(pipeWriter{&buf})
		require.NoError(t, flushio.WriteByte(wf, 'x'))
		assert.Equal(t, "", buf.String(), "expected write to be buffered")
		require.NoError(t, wf.Flush())
		assert.Equal(t, "x", buf.String(), "expected write after flush")
	})

	t.Run("discard", func(t *testing.T) {
		wf := flushio.NewWriteFlusher(io.Discard)
		require.NoError(t, flushio.WriteByte(wf, 'x'))
		require.NoError(t, wf.Flush())
	})
}

func Test_LineFlusher(t *testing.T) {
	var buf bytes.Buffer
	wf := flushio.LineFlusher(flushio.NewWriteFlusher(pipeWriter{&buf}))
	assert.Equal(t, wf, flushio.LineFlusher(wf), "expected LineFlusher to be idempotent")

	for _, b := range []byte("hi") {
		require.NoError(t, flushio.WriteByte(wf, b))
	}
	assert.Equal(t, "", buf.String(), "expected no flush before line feed")

	require.NoError(t, flushio.WriteByte(wf, '\n'))
	assert.Equal(t, "hi\n", buf.String(), "expected flush after line feed")

	_, err := wf.Write([]byte("a\nb"))
	require.NoError(t, err)
	assert.Equal(t, "hi\na\nb", buf.String(), "expected flush after multi-byte line write")
}

func Test_Tee(t *testing.T) {
	var a, b strings.Builder
	wf := flushio.Tee(
		flushio.NewWriteFlusher(&a),
		nil,
		flushio.Tee(flushio.NewWriteFlusher(&b)),
	)
	require.NoError(t, flushio.WriteByte(wf, 'z'))
	_, err := io.WriteString(wf, "zy")
	require.NoError(t, err)
	require.NoError(t, wf.Flush())
	assert.Equal(t, "zzy", a.String())
	assert.Equal(t, "zzy", b.String())

	assert.Nil(t, flushio.Tee())
	assert.Nil(t, flushio.Tee(nil, nil))

	one := flushio.NewWriteFlusher(&a)
	assert.Equal(t, one, flushio.Tee(nil, one), "expected a lone writer to be returned as-is")
}

func Test_Tee_failure(t *testing.T) {
	bang := errors.New("bang")
	var a, c strings.Builder
	wf := flushio.Tee(
		flushio.NewWriteFlusher(&a),
		nopFlush{failWriter{bang}},
		flushio.NewWriteFlusher(&c),
	)
	assert.ErrorIs(t, flushio.WriteByte(wf, 'q'), bang)
	_, err := wf.Write([]byte("rs"))
	assert.ErrorIs(t, err, bang)
	assert.Equal(t, "qrs", a.String(), "expected writers before the failure to see every byte")
	assert.Equal(t, "qrs", c.String(), "expected writers after the failure to see every byte")

	buffered := flushio.Tee(flushio.NewWriteFlusher(&a), flushio.NewWriteFlusher(failWriter{bang}))
	_, err = buffered.Write([]byte("t"))
	require.NoError(t, err, "expected bufio to defer the failure")
	assert.ErrorIs(t, buffered.Flush(), bang)
}

type nopFlush struct{ io.Writer }

func (nopFlush) Flush() error { return nil }
