package streams

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iamNilotpal/streamkit/internal/core/domain"
	"github.com/iamNilotpal/streamkit/pkg/errors"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = []byte(strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit.\n", 500))

func readAllAndClose(t *testing.T, rc io.ReadCloser) []byte {
	t.Helper()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	return data
}

func TestDecompressStreamNoneYieldsRawBytes(t *testing.T) {
	src := writeFile(t, t.TempDir(), "raw.bin", corpus)

	rc, err := DecompressStream(src, domain.CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, corpus, readAllAndClose(t, rc))

	// The first Close released the underlying file.
	assert.ErrorIs(t, rc.Close(), os.ErrClosed)
}

func TestDecompressStreamGzipFile(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(corpus)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	src := writeFile(t, t.TempDir(), "data.gz", buf.Bytes())

	rc, err := DecompressStream(src, domain.CompressionGzip)
	require.NoError(t, err)
	assert.Equal(t, corpus, readAllAndClose(t, rc))
}

func TestDecompressStreamDeflateFile(t *testing.T) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	require.NoError(t, err)
	_, err = fw.Write(corpus)
	require.NoError(t, err)
	require.NoError(t, fw.Close())

	src := writeFile(t, t.TempDir(), "data.deflate", buf.Bytes())

	rc, err := DecompressStream(src, domain.CompressionDeflate)
	require.NoError(t, err)
	assert.Equal(t, corpus, readAllAndClose(t, rc))
}

func TestCompressThenDecompress(t *testing.T) {
	methods := []domain.CompressionMethod{
		domain.CompressionNone,
		domain.CompressionDeflate,
		domain.CompressionGzip,
		domain.CompressionZlib,
		domain.CompressionZstd,
	}

	s := newTestService(t)
	for _, method := range methods {
		t.Run(method.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "payload."+method.String())

			wc, err := s.CompressStream(path, method)
			require.NoError(t, err)
			_, err = wc.Write(corpus)
			require.NoError(t, err)
			require.NoError(t, wc.Close())

			stat, err := os.Stat(path)
			require.NoError(t, err)
			if method == domain.CompressionNone {
				assert.Equal(t, int64(len(corpus)), stat.Size())
			} else {
				assert.Less(t, stat.Size(), int64(len(corpus)))
			}

			rc, err := s.DecompressStream(path, method)
			require.NoError(t, err)
			assert.Equal(t, corpus, readAllAndClose(t, rc))
		})
	}
}

func TestDecompressStreamRejectsCorruptGzip(t *testing.T) {
	src := writeFile(t, t.TempDir(), "plain.txt", []byte("this is not gzip data"))

	_, err := DecompressStream(src, domain.CompressionGzip)
	require.Error(t, err)

	var streamErr *errors.StreamError
	require.ErrorAs(t, err, &streamErr)
	assert.Equal(t, errors.ErrorCompression, streamErr.Category)
	assert.False(t, errors.IsValidationError(err))
}

func TestDecompressStreamValidation(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "raw.bin", corpus)

	_, err := DecompressStream("", domain.CompressionGzip)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = DecompressStream("   ", domain.CompressionNone)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = DecompressStream(filepath.Join(dir, "missing.gz"), domain.CompressionGzip)
	assert.True(t, errors.IsNotFound(err))

	_, err = DecompressStream(src, domain.CompressionMethod(99))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCompressStreamValidation(t *testing.T) {
	_, err := CompressStream(" ", domain.CompressionGzip)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = CompressStream(filepath.Join(t.TempDir(), "x"), domain.CompressionMethod(42))
	assert.True(t, errors.IsInvalidArgument(err))

	s, err := New(&domain.StreamOptions{CompressionOptions: &domain.CompressionOptions{Level: 7}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "x.zst")
	_, err = s.CompressStream(path, domain.CompressionZstd)
	assert.True(t, errors.IsInvalidArgument(err), "level 7 is out of range for zstd")
	assert.NoFileExists(t, path)

	wc, err := s.CompressStream(filepath.Join(t.TempDir(), "x.gz"), domain.CompressionGzip)
	require.NoError(t, err)
	require.NoError(t, wc.Close())
}

func TestCompressFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "plain.txt", corpus)
	packed := filepath.Join(dir, "plain.txt.zst")
	unpacked := filepath.Join(dir, "unpacked.txt")

	n, err := CompressFile(src, packed, domain.CompressionZstd)
	require.NoError(t, err)
	assert.Equal(t, int64(len(corpus)), n)

	n, err = DecompressFile(packed, unpacked, domain.CompressionZstd)
	require.NoError(t, err)
	assert.Equal(t, int64(len(corpus)), n)
	assert.Equal(t, corpus, readFile(t, unpacked))
}

func TestCompressFileRejectsSourceAsDestination(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "plain.txt", corpus)
	symlink := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(src, symlink))

	for _, dst := range []string{src, symlink} {
		_, err := CompressFile(src, dst, domain.CompressionGzip)
		assert.True(t, errors.IsInvalidArgument(err), dst)

		_, err = DecompressFile(src, dst, domain.CompressionNone)
		assert.True(t, errors.IsInvalidArgument(err), dst)
	}

	assert.Equal(t, corpus, readFile(t, src))
}
