package yamlconf

import (
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-yamlconf/config"
	yamlcodec "github.com/0xalexb/hjarta-yamlconf/config/codec/yaml"
	"github.com/0xalexb/hjarta-yamlconf/logging"
)

// Open loads the YAML configuration file at path.
// Events are logged to stderr at the level set by WithLogLevel, as JSON unless WithLogFormat
// selects text.
func Open(path string, opts ...Option) (*config.Configuration, error) {
	options := newOptions(opts)

	return open(path, &options, createLogger(&options, os.Stderr))
}

func newOptions(opts []Option) Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Codec == nil {
		options.Codec = yamlcodec.NewCodec()
	}

	return options
}

func open(path string, options *Options, logger *slog.Logger) (*config.Configuration, error) {
	configOpts := make([]config.Option, 0, len(options.Config)+1)
	configOpts = append(configOpts, config.WithLogger(logger))
	configOpts = append(configOpts, options.Config...)

	return config.Load(path, options.Codec, configOpts...)
}

func createLogger(options *Options, w io.Writer) *slog.Logger {
	format := options.LogFormat
	if format == "" {
		format = logging.FormatJSON
	}

	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: format}

	return logging.NewLogger(loggerConfig, w)
}
