package streams

import (
	"encoding/hex"
	"io"
	"strings"

	"github.com/iamNilotpal/streamkit/pkg/errors"
	"go.uber.org/multierr"
)

// CalculateHash digests everything left in r with the named algorithm and
// returns the digest as upper-case hex without separators. The algorithm name
// is resolved when the digest engine is built; r is neither validated beyond
// a nil check nor closed.
func (s *Service) CalculateHash(r io.Reader, algorithmName string) (string, error) {
	if r == nil {
		return "", errors.InvalidArgument("stream", nil, "stream must not be nil")
	}

	h, err := s.digests.New(algorithmName)
	if err != nil {
		return "", errors.InvalidArgument("algorithmName", algorithmName, "%v", err)
	}

	n, err := io.Copy(h, r)
	if err != nil {
		return "", errors.NewStreamError(errors.ErrorDigest, opCalculateHash, "", err)
	}

	sum := strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
	s.log.Debugw("digest computed", "operation", opCalculateHash, "algorithm", algorithmName, "bytes", n)
	return sum, nil
}

// HashFile validates and opens sourcePath, then hashes it with CalculateHash.
func (s *Service) HashFile(sourcePath, algorithmName string) (sum string, err error) {
	if err := s.validateSource(sourcePath); err != nil {
		return "", err
	}

	src, err := s.fs.Open(sourcePath)
	if err != nil {
		return "", errors.NewStreamError(errors.ErrorStorage, opCalculateHash, sourcePath, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(src))

	return s.CalculateHash(src, algorithmName)
}
