package streams

import (
	"path/filepath"
	"testing"

	"github.com/iamNilotpal/streamkit/internal/core/domain"
	"github.com/iamNilotpal/streamkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewAppliesDefaults(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	opts := s.Options()
	assert.Equal(t, uint32(DefaultBufferSize), opts.BufferSize)
	assert.Equal(t, DefaultLineSeparator, opts.LineSeparator)
	assert.Equal(t, DefaultFileMode, opts.FileMode)
	assert.NotNil(t, opts.CompressionOptions)
	assert.NotNil(t, opts.Logger)
}

func TestNewDoesNotMutateCallerOptions(t *testing.T) {
	opts := &domain.StreamOptions{BufferSize: 8192}

	s, err := New(opts)
	require.NoError(t, err)

	assert.Empty(t, opts.LineSeparator)
	assert.Nil(t, opts.Logger)
	assert.Equal(t, uint32(8192), s.Options().BufferSize)
}

func TestNewValidatesOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    domain.StreamOptions
		wantErr bool
	}{
		{name: "zero value", opts: domain.StreamOptions{}},
		{name: "minimum buffer", opts: domain.StreamOptions{BufferSize: DefaultMinBufferSize}},
		{name: "maximum buffer", opts: domain.StreamOptions{BufferSize: DefaultMaxBufferSize}},
		{name: "buffer too small", opts: domain.StreamOptions{BufferSize: 1024}, wantErr: true},
		{name: "buffer too large", opts: domain.StreamOptions{BufferSize: DefaultMaxBufferSize * 2}, wantErr: true},
		{name: "buffer not power of two", opts: domain.StreamOptions{BufferSize: 5000}, wantErr: true},
		{name: "crlf separator", opts: domain.StreamOptions{LineSeparator: "\r\n"}},
		{name: "bad separator", opts: domain.StreamOptions{LineSeparator: ";"}, wantErr: true},
		{name: "bad file mode", opts: domain.StreamOptions{FileMode: 01000 | 0644}, wantErr: true},
		{
			name:    "negative decoder concurrency",
			opts:    domain.StreamOptions{CompressionOptions: &domain.CompressionOptions{DecoderConcurrency: -2}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&tt.opts)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestOperationsLogAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := New(&domain.StreamOptions{Logger: zap.New(core)})
	require.NoError(t, err)

	dir := t.TempDir()
	src := writeFile(t, dir, "src.txt", []byte("one\ntwo"))

	_, err = s.LineCopy(src, filepath.Join(dir, "dst.txt"))
	require.NoError(t, err)

	entries := logs.FilterMessage("copy completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, opLineCopy, entries[0].ContextMap()["operation"])
	assert.Equal(t, int64(2), entries[0].ContextMap()["lines"])
}

func TestStreamLogsNameTheCodec(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := New(&domain.StreamOptions{Logger: zap.New(core)})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "payload.zst")
	wc, err := s.CompressStream(path, domain.CompressionZstd)
	require.NoError(t, err)
	require.NoError(t, wc.Close())

	rc, err := s.DecompressStream(path, domain.CompressionNone)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	created := logs.FilterMessage("stream created").All()
	require.Len(t, created, 1)
	assert.Equal(t, "zstd", created[0].ContextMap()["method"])

	opened := logs.FilterMessage("stream opened").All()
	require.Len(t, opened, 1)
	assert.Equal(t, "none", opened[0].ContextMap()["method"])
}

func TestFailuresAreNotLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := New(&domain.StreamOptions{Logger: zap.New(core)})
	require.NoError(t, err)

	_, err = s.BlockCopy(filepath.Join(t.TempDir(), "missing"), "dst")
	require.Error(t, err)
	assert.Zero(t, logs.Len())
}
