package main

import (
	"io"
	"os"

	"github.com/iamNilotpal/streamkit/config"
	"github.com/iamNilotpal/streamkit/internal/core/domain"
	"github.com/iamNilotpal/streamkit/internal/core/services/streams"
	"github.com/iamNilotpal/streamkit/pkg/errors"
	"github.com/iamNilotpal/streamkit/pkg/logger"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	path := "streamkit.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	bootLog := logger.New("streamkit")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		bootLog.Errorw("load config error", "path", path, "error", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		bootLog.Errorw("invalid log level", "level", cfg.LogLevel, "error", err)
		os.Exit(1)
	}

	log := logger.NewWithLevel("streamkit", level)
	defer log.Sync()

	opts := cfg.StreamOptions()
	opts.Logger = log.Desugar()

	service, err := streams.New(opts)
	if err != nil {
		logError(log, "create service error", err)
		os.Exit(1)
	}

	failed := 0
	for _, job := range cfg.Jobs {
		result, err := run(service, job)
		if err != nil {
			failed++
			logError(log.With("job", job.Name, "operation", job.Operation), "job failed", err)
			continue
		}
		log.Infow("job completed", "job", job.Name, "operation", job.Operation, "result", result)
	}

	if failed > 0 {
		log.Errorw("some jobs failed", "failed", failed, "total", len(cfg.Jobs))
		log.Sync()
		os.Exit(1)
	}
}

func logError(log *zap.SugaredLogger, msg string, err error) {
	if ve := errors.AsValidationError(err); ve != nil {
		log.Errorw(msg, "field", ve.Field, "value", ve.Value, "error", ve.Err)
		return
	}
	log.Errorw(msg, "error", err)
}

func run(service *streams.Service, job config.Job) (any, error) {
	switch job.Operation {
	case config.OpByteCopy:
		return service.ByteCopy(job.Source, job.Destination)
	case config.OpBlockCopy:
		return service.BlockCopy(job.Source, job.Destination)
	case config.OpBufferedBlockCopy:
		return service.BufferedBlockCopy(job.Source, job.Destination)
	case config.OpLineCopy:
		return service.LineCopy(job.Source, job.Destination)
	case config.OpReadText:
		text, err := service.ReadEncodedText(job.Source, job.Encoding)
		return len(text), err
	case config.OpHash:
		return service.HashFile(job.Source, job.Algorithm)
	case config.OpDecompress:
		return decompress(service, job)
	case config.OpCompress:
		return compress(service, job)
	default:
		return nil, errors.InvalidArgument("operation", job.Operation, "unknown operation %q", job.Operation)
	}
}

// decompress writes the decoded stream to the destination when one is given,
// otherwise it drains it. Either way it reports the decoded size.
func decompress(service *streams.Service, job config.Job) (n int64, err error) {
	method, err := domain.ParseCompressionMethod(job.Method)
	if err != nil {
		return 0, err
	}

	if job.Destination != "" {
		return service.DecompressFile(job.Source, job.Destination, method)
	}

	rc, err := service.DecompressStream(job.Source, method)
	if err != nil {
		return 0, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(rc))

	return io.Copy(io.Discard, rc)
}

func compress(service *streams.Service, job config.Job) (int64, error) {
	method, err := domain.ParseCompressionMethod(job.Method)
	if err != nil {
		return 0, err
	}
	return service.CompressFile(job.Source, job.Destination, method)
}
