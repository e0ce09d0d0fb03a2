package streams

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func randomBytes(n int) []byte {
	rng := rand.New(rand.NewSource(int64(n)))
	data := make([]byte, n)
	rng.Read(data)
	return data
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	s, err := New(nil)
	require.NoError(t, err)
	return s
}
