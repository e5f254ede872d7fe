package yamlconf

import (
	"io/fs"

	"github.com/0xalexb/hjarta-yamlconf/config"

	"github.com/spf13/afero"
)

// Options holds configuration settings for opening a configuration file.
type Options struct {
	LogLevel   string
	LogFormat  string
	Codec      config.Codec
	Config     []config.Option
	SaveOnStop bool
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithLogLevel sets the log level for load and save events.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format: logging.FormatJSON (default) or logging.FormatText.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithCodec replaces the default goccy/go-yaml codec, e.g. with yamlv3.NewCodec().
func WithCodec(codec config.Codec) Option {
	return func(opts *Options) {
		opts.Codec = codec
	}
}

// WithAutoSave saves the file after every successful mutation.
func WithAutoSave(enabled bool) Option {
	return func(opts *Options) {
		opts.Config = append(opts.Config, config.WithAutoSave(enabled))
	}
}

// WithDefaultResource bootstraps a missing file from name inside fsys, typically an embed.FS.
func WithDefaultResource(fsys fs.FS, name string) Option {
	return func(opts *Options) {
		opts.Config = append(opts.Config, config.WithDefaultResource(fsys, name))
	}
}

// WithFs sets the filesystem holding the configuration file.
func WithFs(fsys afero.Fs) Option {
	return func(opts *Options) {
		opts.Config = append(opts.Config, config.WithFs(fsys))
	}
}

// WithSaveOnStop makes the Fx module save the configuration when the application stops.
func WithSaveOnStop() Option {
	return func(opts *Options) {
		opts.SaveOnStop = true
	}
}
