package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/iamNilotpal/streamkit/internal/adapters/compression"
	"github.com/iamNilotpal/streamkit/internal/adapters/digest"
	"github.com/iamNilotpal/streamkit/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Operation names accepted in a job definition.
const (
	OpByteCopy          = "byte_copy"
	OpBlockCopy         = "block_copy"
	OpBufferedBlockCopy = "buffered_block_copy"
	OpLineCopy          = "line_copy"
	OpReadText          = "read_text"
	OpDecompress        = "decompress"
	OpCompress          = "compress"
	OpHash              = "hash"
)

type Config struct {
	LogLevel         string `yaml:"log_level"`         // zap level name
	BufferSize       uint32 `yaml:"buffer_size"`       // Size of copy buffers
	LineSeparator    string `yaml:"line_separator"`    // "lf" or "crlf"
	CompressionLevel int    `yaml:"compression_level"` // 0 selects the codec default
	Jobs             []Job  `yaml:"jobs"`
}

// A single operation run by the streamkit runner.
type Job struct {
	Name        string `yaml:"name"`
	Operation   string `yaml:"operation"`
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Encoding    string `yaml:"encoding"`  // read_text only
	Method      string `yaml:"method"`    // compress and decompress only
	Algorithm   string `yaml:"algorithm"` // hash only
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		BufferSize:    64 * 1024, // 64KB
		LineSeparator: "lf",
	}
}

// Loads configuration from a YAML file. Fields missing from the file keep
// the values from DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return Parse(data)
}

// Parses and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Separator converts the configured line_separator into the bytes LineCopy writes.
func (c *Config) Separator() string {
	if strings.EqualFold(c.LineSeparator, "crlf") {
		return "\r\n"
	}
	return "\n"
}

// StreamOptions maps the configuration onto the stream service options.
func (c *Config) StreamOptions() *domain.StreamOptions {
	return &domain.StreamOptions{
		BufferSize:         c.BufferSize,
		LineSeparator:      c.Separator(),
		CompressionOptions: &domain.CompressionOptions{Level: c.CompressionLevel},
	}
}

func validateConfig(config *Config) error {
	switch strings.ToLower(config.LineSeparator) {
	case "", "lf", "crlf":
	default:
		return fmt.Errorf("line_separator must be lf or crlf, got %q", config.LineSeparator)
	}

	if config.CompressionLevel < 0 || config.CompressionLevel > 9 {
		return fmt.Errorf("compression_level must be between 0 and 9")
	}

	digests := digest.NewRegistry()
	for i := range config.Jobs {
		if err := validateJob(&config.Jobs[i], config.CompressionLevel, digests); err != nil {
			return fmt.Errorf("invalid job %d (%s): %w", i, config.Jobs[i].Name, err)
		}
	}

	return nil
}

// validateJob checks a job against the operation it names. The compression
// level is global, so it is checked again per method: zstd accepts fewer
// levels than the DEFLATE family.
func validateJob(job *Job, level int, digests *digest.Registry) error {
	needsDestination := false

	switch job.Operation {
	case OpByteCopy, OpBlockCopy, OpBufferedBlockCopy, OpLineCopy:
		needsDestination = true
	case OpReadText:
		if strings.TrimSpace(job.Encoding) == "" {
			return fmt.Errorf("encoding is required")
		}
	case OpDecompress, OpCompress:
		method, err := domain.ParseCompressionMethod(job.Method)
		if err != nil {
			return err
		}
		if err := compression.Validate(method, &domain.CompressionOptions{Level: level}); err != nil {
			return err
		}
		needsDestination = job.Operation == OpCompress
	case OpHash:
		if strings.TrimSpace(job.Algorithm) == "" {
			return fmt.Errorf("algorithm is required")
		}
		if err := digests.Validate(job.Algorithm); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown operation %q", job.Operation)
	}

	if strings.TrimSpace(job.Source) == "" {
		return fmt.Errorf("source is required")
	}

	if needsDestination && strings.TrimSpace(job.Destination) == "" {
		return fmt.Errorf("destination is required")
	}

	return nil
}
