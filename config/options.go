package config

import (
	"io/fs"
	"log/slog"

	"github.com/spf13/afero"
)

// Options holds the load settings of a Configuration.
type Options struct {
	// AutoSave saves the file after every successful mutation.
	AutoSave bool
	// DefaultResource and DefaultName name the bundled file copied to the configuration path
	// when it does not exist. A nil DefaultResource makes a missing file an error.
	DefaultResource fs.FS
	DefaultName     string
	// Fs is the filesystem holding the configuration file. Defaults to the OS filesystem.
	Fs afero.Fs
	// Logger receives load and save events. Defaults to slog.Default().
	Logger *slog.Logger
}

// Option defines a function type for applying load settings.
type Option func(*Options)

// WithAutoSave enables or disables saving after every mutation. Each mutation then performs
// blocking file I/O while holding the write lock, which is costly for write-heavy workloads.
func WithAutoSave(enabled bool) Option {
	return func(opts *Options) {
		opts.AutoSave = enabled
	}
}

// WithDefaultResource copies name from fsys to the configuration path when the file is missing.
// An embed.FS works as fsys.
func WithDefaultResource(fsys fs.FS, name string) Option {
	return func(opts *Options) {
		opts.DefaultResource = fsys
		opts.DefaultName = name
	}
}

// WithFs sets the filesystem holding the configuration file.
func WithFs(fsys afero.Fs) Option {
	return func(opts *Options) {
		opts.Fs = fsys
	}
}

// WithLogger sets the logger for load and save events.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func newOptions(opts []Option) Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Fs == nil {
		options.Fs = afero.NewOsFs()
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return options
}
