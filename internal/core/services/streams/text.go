package streams

import (
	"github.com/iamNilotpal/streamkit/internal/adapters/encoding"
	"github.com/iamNilotpal/streamkit/pkg/errors"
	"go.uber.org/multierr"
)

// ReadEncodedText reads the whole source, decoding it from the named
// encoding, and returns the content as a UTF-8 string. A byte-order mark at
// the start of the file wins over encodingName and is not part of the result.
//
// Argument checks run before the file system is consulted, so a blank or
// unsupported encoding name is reported even when the source is missing.
func (s *Service) ReadEncodedText(sourcePath, encodingName string) (text string, err error) {
	if isBlank(sourcePath) {
		return "", errors.InvalidArgument("sourcePath", sourcePath, "source path must not be empty or whitespace")
	}

	if isBlank(encodingName) {
		return "", errors.InvalidArgument("encodingName", encodingName, "encoding name must not be empty or whitespace")
	}

	enc, err := s.encodings.Lookup(encodingName)
	if err != nil {
		return "", errors.InvalidArgument("encodingName", encodingName, "%v", err)
	}

	if err := s.validateSource(sourcePath); err != nil {
		return "", err
	}

	src, err := s.fs.Open(sourcePath)
	if err != nil {
		return "", errors.NewStreamError(errors.ErrorStorage, opReadEncodedText, sourcePath, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(src))

	text, err = s.pool.ReadString(encoding.NewDecoder(src, enc))
	if err != nil {
		return "", errors.NewStreamError(errors.ErrorEncoding, opReadEncodedText, sourcePath, err)
	}

	s.log.Debugw("text decoded", "operation", opReadEncodedText, "source", sourcePath, "encoding", encodingName, "length", len(text))
	return text, nil
}
